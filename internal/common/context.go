package common

import "context"

// UserContext carries the authenticated user identity through a request.
type UserContext struct {
	UserID string
	Email  string
}

type contextKey string

const userContextKey contextKey = "fizen_user_context"

// WithUserContext returns a context carrying the user identity.
func WithUserContext(ctx context.Context, uc *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey, uc)
}

// UserContextFrom extracts the user identity from a context, if present.
func UserContextFrom(ctx context.Context) (*UserContext, bool) {
	uc, ok := ctx.Value(userContextKey).(*UserContext)
	return uc, ok && uc != nil
}
