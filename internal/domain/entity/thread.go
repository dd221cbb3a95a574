package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Thread is the conversational state kept for the duration of a session.
// Nothing here is persisted; the remote database owns all durable state.
type Thread struct {
	ID         string
	Title      string
	Messages   []Message
	LastTaskID string
	CreatedAt  time.Time
}

func NewThread() *Thread {
	return &Thread{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
	}
}

// TurnContext identifies who is talking. It travels on the context.Context of
// a turn rather than in shared mutable state, so every tool call sees exactly
// the identity of the turn that triggered it.
type TurnContext struct {
	TenantID string
	UserID   string
	PersonID string
}

type turnContextKey struct{}

func WithTurnContext(ctx context.Context, turn TurnContext) context.Context {
	return context.WithValue(ctx, turnContextKey{}, turn)
}

func TurnFromContext(ctx context.Context) (TurnContext, bool) {
	turn, ok := ctx.Value(turnContextKey{}).(TurnContext)
	return turn, ok
}
