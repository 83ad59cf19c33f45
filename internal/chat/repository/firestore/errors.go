package firestore

import "errors"

// errInvalidSessionID marks session ids that cannot form a valid
// document path. Surfaced to callers as the generic repository errors.
var errInvalidSessionID = errors.New("invalid session id")
