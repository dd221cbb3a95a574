package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"task-agent/internal/application/port/output"
	"task-agent/internal/domain/entity"
)

type CreateTaskTool struct {
	store  output.TaskStorePort
	logger output.LoggerPort
	args   argValidator
}

func NewCreateTaskTool(store output.TaskStorePort, logger output.LoggerPort) *CreateTaskTool {
	return &CreateTaskTool{store: store, logger: logger}
}

func (t *CreateTaskTool) Name() entity.ToolName { return entity.ToolTaskCreate }
func (t *CreateTaskTool) Description() string {
	return "Create a new task for the current user. Only 'title' is required. Status defaults to 'todo', label to 'feature', priority to 'medium'. Use this when the user asks to add, create, or remember a task. Returns the created task including its ID."
}
func (t *CreateTaskTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"title": map[string]interface{}{
				"type":        "string",
				"minLength":   1,
				"description": "Short task title",
			},
			"description": map[string]interface{}{
				"type":        "string",
				"description": "Optional longer description",
			},
			"status": map[string]interface{}{
				"type":        "string",
				"enum":        statusEnum(),
				"description": "Initial status (default: todo)",
			},
			"label": map[string]interface{}{
				"type":        "string",
				"enum":        labelEnum(),
				"description": "Task label (default: feature)",
			},
			"priority": map[string]interface{}{
				"type":        "string",
				"enum":        priorityEnum(),
				"description": "Task priority (default: medium)",
			},
		},
		"required":             []string{"title"},
		"additionalProperties": false,
	}
}

func (t *CreateTaskTool) Execute(ctx context.Context, arguments string) (string, error) {
	turn, err := requireTurn(ctx)
	if err != nil {
		return "", err
	}
	if err := t.args.validate(t.Parameters(), arguments); err != nil {
		return "", err
	}

	var input struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Status      string `json:"status"`
		Label       string `json:"label"`
		Priority    string `json:"priority"`
	}
	if err := json.Unmarshal([]byte(arguments), &input); err != nil {
		return "", err
	}

	status, err := entity.NormalizeStatus(input.Status)
	if err != nil {
		return "", err
	}
	label, err := entity.NormalizeLabel(input.Label)
	if err != nil {
		return "", err
	}
	priority, err := entity.NormalizePriority(input.Priority)
	if err != nil {
		return "", err
	}

	task, err := t.store.CreateTask(ctx, output.CreateTaskParams{
		TenantID:    turn.TenantID,
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		Label:       label,
		Priority:    priority,
	})
	if err != nil {
		return "", err
	}

	t.logger.Info("Task created", "taskId", task.ID, "tenantId", turn.TenantID)

	return entity.Envelope{
		Text: fmt.Sprintf("Created task %q (%s, %s priority, id %s)", task.Title, task.Status, task.Priority, task.ID),
		UI:   &entity.UIComponent{Name: entity.UITaskCard, Props: map[string]interface{}{"task": taskProps(task)}},
	}.Encode()
}

type ListTasksTool struct {
	store  output.TaskStorePort
	logger output.LoggerPort
	args   argValidator
}

func NewListTasksTool(store output.TaskStorePort, logger output.LoggerPort) *ListTasksTool {
	return &ListTasksTool{store: store, logger: logger}
}

func (t *ListTasksTool) Name() entity.ToolName { return entity.ToolTaskList }
func (t *ListTasksTool) Description() string {
	return "List the current user's tasks, optionally filtered by status, label, or priority. Use this to answer questions like 'what's on my plate' or 'show my bugs'. Returns the matching tasks with their IDs; use those IDs for later updates or deletes."
}
func (t *ListTasksTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"status": map[string]interface{}{
				"type":        "string",
				"enum":        statusEnum(),
				"description": "Only tasks with this status",
			},
			"label": map[string]interface{}{
				"type":        "string",
				"enum":        labelEnum(),
				"description": "Only tasks with this label",
			},
			"priority": map[string]interface{}{
				"type":        "string",
				"enum":        priorityEnum(),
				"description": "Only tasks with this priority",
			},
			"limit": map[string]interface{}{
				"type":        "integer",
				"minimum":     1,
				"maximum":     100,
				"description": "Maximum number of tasks to return (default: 25)",
			},
		},
		"additionalProperties": false,
	}
}

func (t *ListTasksTool) Execute(ctx context.Context, arguments string) (string, error) {
	turn, err := requireTurn(ctx)
	if err != nil {
		return "", err
	}
	if err := t.args.validate(t.Parameters(), arguments); err != nil {
		return "", err
	}

	var input struct {
		Status   string `json:"status"`
		Label    string `json:"label"`
		Priority string `json:"priority"`
		Limit    int    `json:"limit"`
	}
	if err := json.Unmarshal([]byte(arguments), &input); err != nil {
		return "", err
	}

	limit := input.Limit
	if limit == 0 {
		limit = 25
	}

	tasks, err := t.store.ListTasks(ctx, turn.TenantID, output.TaskFilter{
		Status:   entity.TaskStatus(input.Status),
		Label:    entity.TaskLabel(input.Label),
		Priority: entity.TaskPriority(input.Priority),
		Limit:    limit,
	})
	if err != nil {
		return "", err
	}

	if len(tasks) == 0 {
		return "No tasks found", nil
	}

	var lines []string
	for i := range tasks {
		lines = append(lines, taskLine(&tasks[i]))
	}

	return entity.Envelope{
		Text: fmt.Sprintf("Found %d task(s):\n%s", len(tasks), strings.Join(lines, "\n")),
		UI:   &entity.UIComponent{Name: entity.UITaskTable, Props: taskListProps(tasks)},
	}.Encode()
}

type GetTaskTool struct {
	store  output.TaskStorePort
	logger output.LoggerPort
	args   argValidator
}

func NewGetTaskTool(store output.TaskStorePort, logger output.LoggerPort) *GetTaskTool {
	return &GetTaskTool{store: store, logger: logger}
}

func (t *GetTaskTool) Name() entity.ToolName { return entity.ToolTaskGet }
func (t *GetTaskTool) Description() string {
	return "Fetch a single task by its ID. Use this when the user refers to a specific task and you need its current details before updating or summarizing it."
}
func (t *GetTaskTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"id": map[string]interface{}{
				"type":        "string",
				"minLength":   1,
				"description": "Task ID",
			},
		},
		"required":             []string{"id"},
		"additionalProperties": false,
	}
}

func (t *GetTaskTool) Execute(ctx context.Context, arguments string) (string, error) {
	turn, err := requireTurn(ctx)
	if err != nil {
		return "", err
	}
	if err := t.args.validate(t.Parameters(), arguments); err != nil {
		return "", err
	}

	var input struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal([]byte(arguments), &input); err != nil {
		return "", err
	}

	task, err := t.store.GetTask(ctx, turn.TenantID, input.ID)
	if err != nil {
		return "", err
	}

	return entity.Envelope{
		Text: taskLine(task),
		UI:   &entity.UIComponent{Name: entity.UITaskCard, Props: map[string]interface{}{"task": taskProps(task)}},
	}.Encode()
}

type UpdateTaskTool struct {
	store  output.TaskStorePort
	logger output.LoggerPort
	args   argValidator
}

func NewUpdateTaskTool(store output.TaskStorePort, logger output.LoggerPort) *UpdateTaskTool {
	return &UpdateTaskTool{store: store, logger: logger}
}

func (t *UpdateTaskTool) Name() entity.ToolName { return entity.ToolTaskUpdate }
func (t *UpdateTaskTool) Description() string {
	return "Update fields of an existing task by ID. Provide only the fields to change; everything else is left untouched. Use this to change status (e.g. mark done), retitle, relabel, or reprioritize a task."
}
func (t *UpdateTaskTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"id": map[string]interface{}{
				"type":        "string",
				"minLength":   1,
				"description": "Task ID",
			},
			"title": map[string]interface{}{
				"type":        "string",
				"minLength":   1,
				"description": "New title",
			},
			"description": map[string]interface{}{
				"type":        "string",
				"description": "New description (empty string clears it)",
			},
			"status": map[string]interface{}{
				"type":        "string",
				"enum":        statusEnum(),
				"description": "New status",
			},
			"label": map[string]interface{}{
				"type":        "string",
				"enum":        labelEnum(),
				"description": "New label",
			},
			"priority": map[string]interface{}{
				"type":        "string",
				"enum":        priorityEnum(),
				"description": "New priority",
			},
		},
		"required":             []string{"id"},
		"additionalProperties": false,
	}
}

func (t *UpdateTaskTool) Execute(ctx context.Context, arguments string) (string, error) {
	turn, err := requireTurn(ctx)
	if err != nil {
		return "", err
	}
	if err := t.args.validate(t.Parameters(), arguments); err != nil {
		return "", err
	}

	var input struct {
		ID          string  `json:"id"`
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Status      *string `json:"status"`
		Label       *string `json:"label"`
		Priority    *string `json:"priority"`
	}
	if err := json.Unmarshal([]byte(arguments), &input); err != nil {
		return "", err
	}

	params := output.UpdateTaskParams{
		TenantID:    turn.TenantID,
		TaskID:      input.ID,
		Title:       input.Title,
		Description: input.Description,
	}
	if input.Status != nil {
		status := entity.TaskStatus(*input.Status)
		params.Status = &status
	}
	if input.Label != nil {
		label := entity.TaskLabel(*input.Label)
		params.Label = &label
	}
	if input.Priority != nil {
		priority := entity.TaskPriority(*input.Priority)
		params.Priority = &priority
	}

	task, err := t.store.UpdateTask(ctx, params)
	if err != nil {
		return "", err
	}

	t.logger.Info("Task updated", "taskId", task.ID, "tenantId", turn.TenantID)

	return entity.Envelope{
		Text: fmt.Sprintf("Updated task %q (now %s, %s priority)", task.Title, task.Status, task.Priority),
		UI:   &entity.UIComponent{Name: entity.UITaskCard, Props: map[string]interface{}{"task": taskProps(task)}},
	}.Encode()
}

type DeleteTaskTool struct {
	store  output.TaskStorePort
	logger output.LoggerPort
	args   argValidator
}

func NewDeleteTaskTool(store output.TaskStorePort, logger output.LoggerPort) *DeleteTaskTool {
	return &DeleteTaskTool{store: store, logger: logger}
}

func (t *DeleteTaskTool) Name() entity.ToolName { return entity.ToolTaskDelete }
func (t *DeleteTaskTool) Description() string {
	return "Permanently delete a task by its ID. Only use this when the user explicitly asks to delete or remove a task, not for marking it done."
}
func (t *DeleteTaskTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"id": map[string]interface{}{
				"type":        "string",
				"minLength":   1,
				"description": "Task ID",
			},
		},
		"required":             []string{"id"},
		"additionalProperties": false,
	}
}

func (t *DeleteTaskTool) Execute(ctx context.Context, arguments string) (string, error) {
	turn, err := requireTurn(ctx)
	if err != nil {
		return "", err
	}
	if err := t.args.validate(t.Parameters(), arguments); err != nil {
		return "", err
	}

	var input struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal([]byte(arguments), &input); err != nil {
		return "", err
	}

	if err := t.store.DeleteTask(ctx, turn.TenantID, input.ID); err != nil {
		return "", err
	}

	t.logger.Info("Task deleted", "taskId", input.ID, "tenantId", turn.TenantID)

	return fmt.Sprintf("Deleted task %s", input.ID), nil
}
