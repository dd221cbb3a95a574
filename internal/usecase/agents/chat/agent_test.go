package chat

import (
	"context"
	"encoding/json"
	"testing"

	"task-agent/internal/application/port/output"
	"task-agent/internal/domain/entity"
	"task-agent/internal/infrastructure/logger"
)

type stubLLM struct {
	lastReq output.ChatRequest
	reply   string
}

func (l *stubLLM) Chat(ctx context.Context, req output.ChatRequest) (*output.ChatResponse, error) {
	l.lastReq = req
	return &output.ChatResponse{Message: entity.Message{
		Role:    entity.RoleAssistant,
		Content: l.reply,
	}}, nil
}

func (l *stubLLM) GenerateStructured(ctx context.Context, req output.StructuredRequest) (json.RawMessage, error) {
	return nil, nil
}

func TestExecute_SingleCompletionNoTools(t *testing.T) {
	llm := &stubLLM{reply: "Hello! How can I help?"}
	agent := New(llm, logger.NewNop(), "be friendly")

	thread := entity.NewThread()
	thread.Messages = []entity.Message{
		{Role: entity.RoleUser, Content: "hi"},
		{Role: entity.RoleAssistant, Content: "hey"},
	}

	outcome, err := agent.Execute(context.Background(), thread, "how are you?")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if outcome.FinalText != "Hello! How can I help?" {
		t.Errorf("unexpected final text: %q", outcome.FinalText)
	}
	if outcome.Iterations != 1 {
		t.Errorf("expected 1 iteration, got %d", outcome.Iterations)
	}
	if len(outcome.Transcript) != 1 {
		t.Errorf("expected 1 transcript message, got %d", len(outcome.Transcript))
	}

	if len(llm.lastReq.Tools) != 0 {
		t.Error("chat agent should not offer tools")
	}
	// system + 2 history + new utterance
	if len(llm.lastReq.Messages) != 4 {
		t.Errorf("expected 4 messages, got %d", len(llm.lastReq.Messages))
	}
}
