package middleware

import (
	pkgLog "chatbot-gateway/pkg/log"
)

// Middleware bundles the cross-cutting gin middlewares.
type Middleware struct {
	l pkgLog.Logger
}

func New(l pkgLog.Logger) Middleware {
	return Middleware{l: l}
}
