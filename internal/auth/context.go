package auth

import (
	"context"

	"github.com/mindease-app/mindease/internal/database"
)

type contextKey string

const userContextKey contextKey = "user"

// SetUserInContext adds the authenticated user to the request context
func SetUserInContext(ctx context.Context, user *database.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// UserFromContext extracts the authenticated user from the request context
func UserFromContext(ctx context.Context) (*database.User, bool) {
	user, ok := ctx.Value(userContextKey).(*database.User)
	return user, ok
}
