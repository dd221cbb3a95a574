package supervisor

import (
	"context"
	"fmt"

	"task-agent/internal/application/port/input"
	"task-agent/internal/application/port/output"
	"task-agent/internal/domain/entity"
)

var _ input.Assistant = (*Supervisor)(nil)

// Titler generates a short thread title from the opening utterance.
type Titler interface {
	ThreadTitle(ctx context.Context, utterance string) (string, error)
	Suggestions(ctx context.Context, lastAnswer string, count int) ([]string, error)
}

const followupCount = 3

// Supervisor is the front door of the assistant: it routes each utterance to
// a sub-agent, runs it, and folds the transcript into a single structured
// response while keeping the thread history current.
type Supervisor struct {
	agents output.SubAgentRegistry
	assist Titler
	logger output.LoggerPort
	ui     output.UserInteractionPort
}

func New(
	agents output.SubAgentRegistry,
	assist Titler,
	logger output.LoggerPort,
	ui output.UserInteractionPort,
) *Supervisor {
	return &Supervisor{
		agents: agents,
		assist: assist,
		logger: logger,
		ui:     ui,
	}
}

func (s *Supervisor) Respond(ctx context.Context, thread *entity.Thread, utterance string) (*entity.StructuredResponse, error) {
	agentType := Route(utterance)
	s.logger.Info("Routing utterance", "thread", thread.ID, "agent", agentType)
	if s.ui != nil {
		s.ui.ShowRouting(ctx, agentType)
	}

	agent, ok := s.agents.Get(agentType)
	if !ok {
		return nil, fmt.Errorf("no agent registered for type %s", agentType)
	}

	outcome, err := agent.Execute(ctx, thread, utterance)
	if err != nil {
		return nil, fmt.Errorf("agent %s failed: %w", agentType, err)
	}

	agg := aggregate(outcome.Transcript)

	resp := &entity.StructuredResponse{
		ThreadID:  thread.ID,
		Agent:     agentType,
		Text:      outcome.FinalText,
		UI:        agg.UI,
		ToolTrace: agg.Trace,
		TaskIDs:   agg.TaskIDs,
	}

	// The auxiliary generations are cosmetic; their failures never sink the
	// turn.
	if s.assist != nil {
		if suggestions, err := s.assist.Suggestions(ctx, outcome.FinalText, followupCount); err != nil {
			s.logger.Warn("Suggestion generation failed", "error", err)
		} else {
			resp.Suggestions = suggestions
		}
	}

	s.updateThread(ctx, thread, utterance, resp)
	return resp, nil
}

// updateThread appends the exchange to the history and refreshes the derived
// bits of thread state.
func (s *Supervisor) updateThread(ctx context.Context, thread *entity.Thread, utterance string, resp *entity.StructuredResponse) {
	firstTurn := len(thread.Messages) == 0

	thread.Messages = append(thread.Messages,
		entity.Message{Role: entity.RoleUser, Content: utterance},
		entity.Message{Role: entity.RoleAssistant, Content: resp.Text},
	)

	if len(resp.TaskIDs) > 0 {
		thread.LastTaskID = resp.TaskIDs[len(resp.TaskIDs)-1]
	}

	if firstTurn && thread.Title == "" {
		thread.Title = fallbackTitle(utterance)
		if s.assist != nil {
			title, err := s.assist.ThreadTitle(ctx, utterance)
			if err != nil {
				s.logger.Warn("Title generation failed", "thread", thread.ID, "error", err)
				return
			}
			thread.Title = title
		}
	}
}

const maxFallbackTitleLen = 40

func fallbackTitle(utterance string) string {
	if len(utterance) <= maxFallbackTitleLen {
		return utterance
	}
	return utterance[:maxFallbackTitleLen] + "..."
}
