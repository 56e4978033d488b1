// Package utils provides small helpers shared across the server: typed
// context keys and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// CallIDCtxKey is the key used to store the identifier of a dispatched
// operation call in the context.
//
//	ctx := utils.WithCallID(ctx, id)
var CallIDCtxKey = contextKey("callID")

// WithCallID returns a copy of ctx carrying callID.
func WithCallID(ctx context.Context, callID string) context.Context {
	return context.WithValue(ctx, CallIDCtxKey, callID)
}

// GetCallIDFromContext retrieves the call identifier from the context.
//
// ok is false when the value is missing, empty or has an unexpected type.
func GetCallIDFromContext(ctx context.Context) (string, bool) {
	callID, ok := ctx.Value(CallIDCtxKey).(string)
	return callID, ok && callID != ""
}
