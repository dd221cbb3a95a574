package input

import (
	"context"

	"task-agent/internal/domain/entity"
)

// Assistant is the single entry point of the system: one user utterance in,
// one structured response out. The thread is mutated in place (history,
// title, last task ID) so the next turn sees this one.
type Assistant interface {
	Respond(ctx context.Context, thread *entity.Thread, utterance string) (*entity.StructuredResponse, error)
}
