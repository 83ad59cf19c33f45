package firestore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	firestorepb "google.golang.org/api/firestore/v1"

	"chatbot-gateway/internal/chat/repository"
	"chatbot-gateway/internal/model"
	pkgLog "chatbot-gateway/pkg/log"
)

type implRepository struct {
	client *Client
	l      pkgLog.Logger
}

// New creates a Firestore-backed HistoryRepository.
//
// Each turn is stored as its own document under
// chat_history/{sessionID}/messages/{uuid}. Storing turns as independent
// records keeps a session free of the single-document size ceiling and
// lets the server assign the timestamp on every append without array
// write conflicts.
func New(client *Client, l pkgLog.Logger) repository.HistoryRepository {
	if client == nil {
		panic("chat/repository/firestore: client is required")
	}
	return &implRepository{client: client, l: l}
}

func (r *implRepository) AppendTurn(ctx context.Context, opt repository.AppendTurnOptions) error {
	if err := validateSessionID(opt.SessionID); err != nil {
		r.l.Errorf(ctx, "chat/repository/firestore.AppendTurn: %v", err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToAppend, err)
	}

	docName := r.client.sessionPath(opt.SessionID) + "/" + messagesCollection + "/" + uuid.NewString()

	write := &firestorepb.Write{
		Update: &firestorepb.Document{
			Name: docName,
			Fields: map[string]firestorepb.Value{
				"user": {StringValue: opt.User},
				"bot":  {StringValue: opt.Bot},
			},
		},
		// The sort key comes from the server clock, not the caller.
		UpdateTransforms: []*firestorepb.FieldTransform{
			{FieldPath: "timestamp", SetToServerValue: "REQUEST_TIME"},
		},
	}

	if err := r.client.commit(ctx, []*firestorepb.Write{write}); err != nil {
		r.l.Errorf(ctx, "chat/repository/firestore.AppendTurn: session=%s: %v", opt.SessionID, err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToAppend, err)
	}
	return nil
}

func (r *implRepository) ListTurns(ctx context.Context, sessionID string) ([]model.Turn, error) {
	if err := validateSessionID(sessionID); err != nil {
		r.l.Errorf(ctx, "chat/repository/firestore.ListTurns: %v", err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}

	docs, err := r.client.listMessages(ctx, sessionID)
	if err != nil {
		r.l.Errorf(ctx, "chat/repository/firestore.ListTurns: session=%s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}

	// Unknown session: empty history, not an error.
	turns := make([]model.Turn, 0, len(docs))
	for _, doc := range docs {
		turns = append(turns, docToTurn(doc))
	}
	return turns, nil
}

// docToTurn converts a Firestore message document to the internal Turn.
// Missing fields map to zero values; a half-written document must not
// fail the whole history read.
func docToTurn(doc *firestorepb.Document) model.Turn {
	turn := model.Turn{}
	if doc == nil {
		return turn
	}

	if v, ok := doc.Fields["user"]; ok {
		turn.User = v.StringValue
	}
	if v, ok := doc.Fields["bot"]; ok {
		turn.Bot = v.StringValue
	}
	if v, ok := doc.Fields["timestamp"]; ok && v.TimestampValue != "" {
		if ts, err := time.Parse(time.RFC3339Nano, v.TimestampValue); err == nil {
			turn.Timestamp = ts
		}
	}
	return turn
}

// validateSessionID rejects ids that would corrupt the document path.
func validateSessionID(sessionID string) error {
	if sessionID == "" {
		return errInvalidSessionID
	}
	if strings.ContainsAny(sessionID, "/\n") {
		return errInvalidSessionID
	}
	return nil
}
