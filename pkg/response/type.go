package response

// ReplyResp is the success body for chat turns.
type ReplyResp struct {
	Reply string `json:"reply"`
}

// ErrorResp is the body for all client and server errors.
type ErrorResp struct {
	Error string `json:"error"`
}

// Public error messages. Upstream detail (status codes, bodies) is logged
// server-side and never echoed to the caller.
const (
	MessageMissingFields = "Message or sessionId is missing."
	MessageInternalError = "Failed to process the request."
	MessageNotAllowed    = "Method Not Allowed"
)
