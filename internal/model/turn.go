package model

import "time"

// Turn is one user-message/bot-reply exchange in a chat session.
// Turns are immutable once written; Timestamp is assigned by the history
// store at write time and is the sole ordering key within a session.
type Turn struct {
	User      string
	Bot       string
	Timestamp time.Time
}
