package chat

import (
	"context"
	"fmt"

	"task-agent/internal/application/port/output"
	"task-agent/internal/domain/entity"
)

var _ output.SubAgent = (*Agent)(nil)

// Agent handles everything that is not about tasks: a single completion over
// the thread history, no tools.
type Agent struct {
	llm          output.LLMPort
	logger       output.LoggerPort
	systemPrompt string
}

func New(llm output.LLMPort, logger output.LoggerPort, systemPrompt string) *Agent {
	return &Agent{
		llm:          llm,
		logger:       logger,
		systemPrompt: systemPrompt,
	}
}

func (a *Agent) GetType() entity.AgentType {
	return entity.AgentTypeChat
}

func (a *Agent) GetDescription() string {
	return "General conversation: greetings, questions, and anything not related to the user's tasks."
}

func (a *Agent) Execute(ctx context.Context, thread *entity.Thread, utterance string) (*entity.AgentOutcome, error) {
	a.logger.Info("Chat agent executing", "thread", thread.ID)

	messages := []entity.Message{
		{Role: entity.RoleSystem, Content: a.systemPrompt},
	}
	messages = append(messages, thread.Messages...)
	messages = append(messages, entity.Message{Role: entity.RoleUser, Content: utterance})

	resp, err := a.llm.Chat(ctx, output.ChatRequest{
		Messages:    messages,
		Temperature: 0.7,
	})
	if err != nil {
		return nil, fmt.Errorf("llm request failed: %w", err)
	}

	return &entity.AgentOutcome{
		FinalText:  resp.Message.Content,
		Transcript: []entity.Message{resp.Message},
		Iterations: 1,
	}, nil
}
