package output

import (
	"context"

	"task-agent/internal/domain/entity"
)

type UserInteractionPort interface {
	ReadUtterance(ctx context.Context) (string, error)

	ShowRouting(ctx context.Context, agent entity.AgentType)
	ShowToolStart(ctx context.Context, toolName, arguments string)
	ShowToolResult(ctx context.Context, toolName, result string, isError bool)
	ShowResponse(ctx context.Context, resp *entity.StructuredResponse)
}
