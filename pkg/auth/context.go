package auth

import (
	"context"
	"errors"
)

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const clientIDKey contextKey = "client_id"

// ErrClientIDNotFound is returned when no client ID exists in the request
// context. Handlers should return 401 when this error occurs.
var ErrClientIDNotFound = errors.New("client_id not found in context")

// ClientIDFromCtx extracts the authenticated client ID from the request
// context. Returns 0 and ErrClientIDNotFound if none is set.
func ClientIDFromCtx(ctx context.Context) (int64, error) {
	clientID, ok := ctx.Value(clientIDKey).(int64)
	if !ok || clientID == 0 {
		return 0, ErrClientIDNotFound
	}
	return clientID, nil
}

// WithClientID returns a new context with the given client ID attached.
// Used by authentication middleware after validating the session.
func WithClientID(ctx context.Context, clientID int64) context.Context {
	return context.WithValue(ctx, clientIDKey, clientID)
}
