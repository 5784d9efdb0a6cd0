package entity

import (
	"context"

	"github.com/gofrs/uuid/v5"
)

type (
	CtxKeyIP     struct{}
	CtxKeyUserID struct{}
	CtxKeyToken  struct{}
)

func SetUserIDToContext(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, CtxKeyUserID{}, userID)
}

// UserIDFromContext returns the authenticated user's ID or ErrUnauthorized.
func UserIDFromContext(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctx.Value(CtxKeyUserID{}).(uuid.UUID)
	if !ok || userID.IsNil() {
		return uuid.Nil, ErrUnauthorized
	}

	return userID, nil
}

func SetTokenToContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, CtxKeyToken{}, token)
}

func TokenFromContext(ctx context.Context) string {
	token, ok := ctx.Value(CtxKeyToken{}).(string)
	if !ok {
		return ""
	}

	return token
}
