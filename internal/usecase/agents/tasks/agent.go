package tasks

import (
	"context"
	"fmt"
	"strings"

	"task-agent/internal/application/port/output"
	"task-agent/internal/domain/entity"
)

const (
	maxIterations     = 8
	maxObservationLen = 8000
)

var _ output.SubAgent = (*Agent)(nil)

// Agent is the task-management sub-agent: an LLM loop bound to the task CRUD
// tools. It hands its full transcript back so the supervisor can extract the
// tool trace and UI payloads.
type Agent struct {
	llm          output.LLMPort
	tools        output.ToolRegistry
	logger       output.LoggerPort
	ui           output.UserInteractionPort
	systemPrompt string
}

func New(
	llm output.LLMPort,
	tools output.ToolRegistry,
	logger output.LoggerPort,
	ui output.UserInteractionPort,
	systemPrompt string,
) *Agent {
	return &Agent{
		llm:          llm,
		tools:        tools,
		logger:       logger,
		ui:           ui,
		systemPrompt: systemPrompt,
	}
}

func (a *Agent) GetType() entity.AgentType {
	return entity.AgentTypeTasks
}

func (a *Agent) GetDescription() string {
	return "Manage the user's tasks: create, list, look up, update, delete, and suggest tasks. Does NOT handle small talk or general questions."
}

func (a *Agent) Execute(ctx context.Context, thread *entity.Thread, utterance string) (*entity.AgentOutcome, error) {
	a.logger.Info("Tasks agent executing", "thread", thread.ID, "utterance", utterance)

	messages := []entity.Message{
		{Role: entity.RoleSystem, Content: a.systemPrompt},
	}
	messages = append(messages, thread.Messages...)
	if thread.LastTaskID != "" {
		messages = append(messages, entity.Message{
			Role:    entity.RoleSystem,
			Content: fmt.Sprintf("The most recently discussed task ID is %s. Use it when the user refers to 'it' or 'that task'.", thread.LastTaskID),
		})
	}
	messages = append(messages, entity.Message{Role: entity.RoleUser, Content: utterance})

	transcriptStart := len(messages)
	toolDefs := a.filterTools()

	for iter := 1; iter <= maxIterations; iter++ {
		a.logger.Debug("Tasks agent iteration", "iteration", iter)

		resp, err := a.llm.Chat(ctx, output.ChatRequest{
			Messages:    messages,
			Tools:       toolDefs,
			Temperature: 0.0,
		})
		if err != nil {
			return nil, fmt.Errorf("llm request failed: %w", err)
		}

		messages = append(messages, resp.Message)

		if len(resp.Message.ToolCalls) == 0 {
			return &entity.AgentOutcome{
				FinalText:  resp.Message.Content,
				Transcript: messages[transcriptStart:],
				Iterations: iter,
			}, nil
		}

		for _, tc := range resp.Message.ToolCalls {
			if a.ui != nil {
				a.ui.ShowToolStart(ctx, tc.Name, tc.Arguments)
			}
			observation := a.executeTool(ctx, tc)

			isError := strings.HasPrefix(observation, "Error: ")
			if a.ui != nil {
				a.ui.ShowToolResult(ctx, tc.Name, observation, isError)
			}

			messages = append(messages, entity.Message{
				Role:       entity.RoleTool,
				ToolCallID: tc.ID,
				Name:       tc.Name,
				Content:    observation,
			})
		}
	}

	// Out of iterations: one last text-only turn so the user gets a report
	// instead of a dangling tool call.
	a.logger.Info("Max iterations reached, requesting final summary")
	messages = append(messages, entity.Message{
		Role:    entity.RoleUser,
		Content: "Maximum tool calls reached. Summarize what you did and what is still pending. Do NOT call any tools; respond with text only.",
	})

	summaryResp, err := a.llm.Chat(ctx, output.ChatRequest{
		Messages:    messages,
		Tools:       nil,
		Temperature: 0.0,
	})
	if err != nil {
		return nil, fmt.Errorf("summary turn failed: %w", err)
	}
	messages = append(messages, summaryResp.Message)

	return &entity.AgentOutcome{
		FinalText:  summaryResp.Message.Content,
		Transcript: messages[transcriptStart:],
		Iterations: maxIterations,
	}, nil
}

func (a *Agent) executeTool(ctx context.Context, tc entity.ToolCall) string {
	tool, ok := a.tools.Get(entity.ToolName(tc.Name))
	if !ok {
		a.logger.Warn("Unknown tool called", "name", tc.Name)
		return fmt.Sprintf("Error: unknown tool '%s'", tc.Name)
	}

	a.logger.Info("Executing tool", "name", tc.Name, "args", tc.Arguments)

	result, err := tool.Execute(ctx, tc.Arguments)
	if err != nil {
		a.logger.Error("Tool execution failed", "name", tc.Name, "error", err)
		return "Error: " + err.Error()
	}

	if len(result) > maxObservationLen {
		result = result[:maxObservationLen] + "\n... (truncated)"
	}

	a.logger.Debug("Tool completed", "name", tc.Name, "resultLen", len(result))
	return result
}

func (a *Agent) filterTools() []entity.ToolDefinition {
	allowedTools := []entity.ToolName{
		entity.ToolTaskCreate,
		entity.ToolTaskList,
		entity.ToolTaskGet,
		entity.ToolTaskUpdate,
		entity.ToolTaskDelete,
		entity.ToolTaskSuggest,
	}

	allTools := a.tools.Definitions()
	filtered := make([]entity.ToolDefinition, 0)

	for _, tool := range allTools {
		for _, allowed := range allowedTools {
			if tool.Name == allowed.String() {
				filtered = append(filtered, tool)
				break
			}
		}
	}

	return filtered
}
