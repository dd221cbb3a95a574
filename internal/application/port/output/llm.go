package output

import (
	"context"
	"encoding/json"

	"task-agent/internal/domain/entity"
)

type LLMPort interface {
	Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error)

	// GenerateStructured asks the model for a single JSON document matching
	// the given schema. Used for auxiliary generation (thread titles,
	// follow-up suggestions), not for the tool-calling loop.
	GenerateStructured(ctx context.Context, req StructuredRequest) (json.RawMessage, error)
}

type ChatRequest struct {
	Messages    []entity.Message
	Tools       []entity.ToolDefinition
	Temperature float32
}

type ChatResponse struct {
	Message entity.Message
}

type StructuredRequest struct {
	System     string
	Prompt     string
	SchemaName string
	Schema     map[string]interface{}
}
