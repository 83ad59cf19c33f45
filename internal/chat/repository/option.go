package repository

// AppendTurnOptions holds parameters for appending one turn to a session log.
type AppendTurnOptions struct {
	SessionID string
	User      string
	Bot       string
}
