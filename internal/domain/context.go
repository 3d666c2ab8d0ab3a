package domain

import "context"

type actorContextKey struct{}

// WithActor returns a context carrying the id of the authenticated user
// performing the request. Services read it when recording audit entries.
func WithActor(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, actorContextKey{}, userID)
}

// ActorFromContext returns the acting user id stored by WithActor, or 0
// when the request is unauthenticated.
func ActorFromContext(ctx context.Context) uint {
	if id, ok := ctx.Value(actorContextKey{}).(uint); ok {
		return id
	}
	return 0
}
