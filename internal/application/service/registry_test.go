package service

import (
	"context"
	"testing"

	"task-agent/internal/domain/entity"
)

type stubTool struct {
	name entity.ToolName
}

func (t *stubTool) Name() entity.ToolName { return t.name }
func (t *stubTool) Description() string   { return "stub tool" }
func (t *stubTool) Parameters() map[string]interface{} {
	return map[string]interface{}{"type": "object"}
}
func (t *stubTool) Execute(ctx context.Context, arguments string) (string, error) {
	return "ok", nil
}

func TestToolRegistry_RegisterAndGet(t *testing.T) {
	registry := NewToolRegistry()
	registry.Register(&stubTool{name: entity.ToolTaskCreate})
	registry.Register(&stubTool{name: entity.ToolTaskList})

	tool, ok := registry.Get(entity.ToolTaskCreate)
	if !ok {
		t.Fatal("expected task_create to be registered")
	}
	if tool.Name() != entity.ToolTaskCreate {
		t.Errorf("expected task_create, got %s", tool.Name())
	}

	if _, ok := registry.Get(entity.ToolTaskDelete); ok {
		t.Error("task_delete should not be registered")
	}
}

func TestToolRegistry_Definitions(t *testing.T) {
	registry := NewToolRegistry()
	registry.Register(&stubTool{name: entity.ToolTaskCreate})
	registry.Register(&stubTool{name: entity.ToolTaskUpdate})

	defs := registry.Definitions()
	if len(defs) != 2 {
		t.Fatalf("expected 2 definitions, got %d", len(defs))
	}
	for _, def := range defs {
		if def.Name == "" || def.Description == "" || def.Parameters == nil {
			t.Errorf("incomplete definition: %+v", def)
		}
	}
}

type stubAgent struct {
	agentType entity.AgentType
}

func (a *stubAgent) GetType() entity.AgentType { return a.agentType }
func (a *stubAgent) GetDescription() string    { return "stub agent" }
func (a *stubAgent) Execute(ctx context.Context, thread *entity.Thread, utterance string) (*entity.AgentOutcome, error) {
	return &entity.AgentOutcome{FinalText: "done"}, nil
}

func TestSubAgentRegistry(t *testing.T) {
	registry := NewSubAgentRegistry()
	registry.Register(&stubAgent{agentType: entity.AgentTypeTasks})
	registry.Register(&stubAgent{agentType: entity.AgentTypeChat})

	agent, ok := registry.Get(entity.AgentTypeTasks)
	if !ok {
		t.Fatal("expected tasks agent to be registered")
	}
	if agent.GetType() != entity.AgentTypeTasks {
		t.Errorf("expected tasks, got %s", agent.GetType())
	}

	if len(registry.List()) != 2 {
		t.Errorf("expected 2 agents, got %d", len(registry.List()))
	}
}
