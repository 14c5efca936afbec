package middleware

import "context"

type contextKey string

const (
	ctxUserID    contextKey = "user_id"
	ctxRole      contextKey = "actor_role"
	ctxAccountID contextKey = "account_id"
)

func stringFromContext(ctx context.Context, key contextKey) string {
	if ctx == nil {
		return ""
	}
	v, _ := ctx.Value(key).(string)
	return v
}

func withString(ctx context.Context, key contextKey, value string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, key, value)
}

func UserIDFromContext(ctx context.Context) string {
	return stringFromContext(ctx, ctxUserID)
}

func RoleFromContext(ctx context.Context) string {
	return stringFromContext(ctx, ctxRole)
}

func AccountIDFromContext(ctx context.Context) string {
	return stringFromContext(ctx, ctxAccountID)
}

// WithUserID injects the authenticated user identifier.
func WithUserID(ctx context.Context, userID string) context.Context {
	return withString(ctx, ctxUserID, userID)
}

// WithAccountID injects the account the actor belongs to.
func WithAccountID(ctx context.Context, accountID string) context.Context {
	return withString(ctx, ctxAccountID, accountID)
}

// WithRole injects the actor role.
func WithRole(ctx context.Context, role string) context.Context {
	return withString(ctx, ctxRole, role)
}
