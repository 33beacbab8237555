package service

import "context"

// Actor identifies who triggered a mutation, for the audit trail.
type Actor struct {
	ID        string
	RequestID string
}

type actorKey struct{}

// WithActor stores the acting administrator in ctx.
func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFrom returns the actor stored in ctx.
func ActorFrom(ctx context.Context) Actor {
	actor, _ := ctx.Value(actorKey{}).(Actor)
	return actor
}
