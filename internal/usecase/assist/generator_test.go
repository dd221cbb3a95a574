package assist

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"task-agent/internal/application/port/output"
	"task-agent/internal/infrastructure/logger"
)

type fakeLLM struct {
	raw     json.RawMessage
	err     error
	lastReq output.StructuredRequest
}

func (l *fakeLLM) Chat(ctx context.Context, req output.ChatRequest) (*output.ChatResponse, error) {
	return nil, fmt.Errorf("not implemented")
}

func (l *fakeLLM) GenerateStructured(ctx context.Context, req output.StructuredRequest) (json.RawMessage, error) {
	l.lastReq = req
	return l.raw, l.err
}

func TestThreadTitle(t *testing.T) {
	llm := &fakeLLM{raw: json.RawMessage(`{"title":"  Sprint planning tasks "}`)}
	gen := New(llm, logger.NewNop())

	title, err := gen.ThreadTitle(context.Background(), "help me plan the sprint")
	if err != nil {
		t.Fatalf("ThreadTitle failed: %v", err)
	}
	if title != "Sprint planning tasks" {
		t.Errorf("unexpected title: %q", title)
	}
	if llm.lastReq.SchemaName != "thread_title" {
		t.Errorf("unexpected schema name: %q", llm.lastReq.SchemaName)
	}
}

func TestThreadTitle_Truncates(t *testing.T) {
	long := `{"title":"` + strings.Repeat("a", 100) + `"}`
	llm := &fakeLLM{raw: json.RawMessage(long)}
	gen := New(llm, logger.NewNop())

	title, err := gen.ThreadTitle(context.Background(), "x")
	if err != nil {
		t.Fatalf("ThreadTitle failed: %v", err)
	}
	if len(title) > maxTitleLen {
		t.Errorf("title not truncated: %d chars", len(title))
	}
}

func TestThreadTitle_EmptyIsError(t *testing.T) {
	llm := &fakeLLM{raw: json.RawMessage(`{"title":"   "}`)}
	gen := New(llm, logger.NewNop())

	if _, err := gen.ThreadTitle(context.Background(), "x"); err == nil {
		t.Error("expected error for empty title")
	}
}

func TestSuggestions_CapsAndFilters(t *testing.T) {
	llm := &fakeLLM{raw: json.RawMessage(`{"suggestions":["show my tasks","", "  mark it done ","create another","one more"]}`)}
	gen := New(llm, logger.NewNop())

	got, err := gen.Suggestions(context.Background(), "Created task t1", 3)
	if err != nil {
		t.Fatalf("Suggestions failed: %v", err)
	}
	want := []string{"show my tasks", "mark it done", "create another"}
	if len(got) != len(want) {
		t.Fatalf("expected %d suggestions, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("suggestion %d: got %q want %q", i, got[i], want[i])
		}
	}
}

func TestSuggestions_DefaultCount(t *testing.T) {
	llm := &fakeLLM{raw: json.RawMessage(`{"suggestions":["a","b","c","d"]}`)}
	gen := New(llm, logger.NewNop())

	got, err := gen.Suggestions(context.Background(), "x", 0)
	if err != nil {
		t.Fatalf("Suggestions failed: %v", err)
	}
	if len(got) != defaultSuggestion {
		t.Errorf("expected %d suggestions, got %d", defaultSuggestion, len(got))
	}
}
