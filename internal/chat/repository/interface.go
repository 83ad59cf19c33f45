package repository

import (
	"context"

	"chatbot-gateway/internal/model"
)

// HistoryRepository is the interface for the per-session chat history store.
//
// The history is an append-only ordered collection of independent,
// individually timestamped records, never a single mutable document with
// an embedded list. That shape avoids a total-size ceiling on one record
// and write conflicts between concurrent appends.
type HistoryRepository interface {
	// AppendTurn writes one immutable turn under the session's log.
	// The store assigns the ordering timestamp at write time. Sessions are
	// created lazily: appending to an unknown session id must succeed.
	AppendTurn(ctx context.Context, opt AppendTurnOptions) error

	// ListTurns returns all turns for the session in ascending timestamp
	// order. An unknown session id yields an empty slice, not an error.
	ListTurns(ctx context.Context, sessionID string) ([]model.Turn, error)
}
