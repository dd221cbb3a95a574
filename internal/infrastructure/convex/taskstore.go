package convex

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"task-agent/internal/application/port/output"
	"task-agent/internal/domain/entity"
)

// Function paths exposed by the deployment.
const (
	fnTasksCreate = "tasks:create"
	fnTasksGet    = "tasks:get"
	fnTasksList   = "tasks:list"
	fnTasksUpdate = "tasks:update"
	fnTasksRemove = "tasks:remove"
)

var _ output.TaskStorePort = (*TaskStore)(nil)

// TaskStore implements the task-store port over the Convex function API.
type TaskStore struct {
	client *Client
}

func NewTaskStore(client *Client) *TaskStore {
	return &TaskStore{client: client}
}

// taskDoc is the wire shape of a task document.
type taskDoc struct {
	ID          string `json:"_id"`
	TenantID    string `json:"tenantId"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
	Label       string `json:"label"`
	Priority    string `json:"priority"`
	CreatedAt   int64  `json:"createdAt"`
	UpdatedAt   int64  `json:"updatedAt"`
}

func (d taskDoc) toEntity() entity.Task {
	return entity.Task{
		ID:          d.ID,
		TenantID:    d.TenantID,
		Title:       d.Title,
		Description: d.Description,
		Status:      entity.TaskStatus(d.Status),
		Label:       entity.TaskLabel(d.Label),
		Priority:    entity.TaskPriority(d.Priority),
		CreatedAt:   time.UnixMilli(d.CreatedAt),
		UpdatedAt:   time.UnixMilli(d.UpdatedAt),
	}
}

func (s *TaskStore) CreateTask(ctx context.Context, params output.CreateTaskParams) (*entity.Task, error) {
	args := map[string]interface{}{
		"tenantId": params.TenantID,
		"title":    params.Title,
		"status":   string(params.Status),
		"label":    string(params.Label),
		"priority": string(params.Priority),
	}
	if params.Description != "" {
		args["description"] = params.Description
	}

	value, err := s.client.Mutation(ctx, fnTasksCreate, args)
	if err != nil {
		return nil, err
	}
	return decodeTask(value)
}

func (s *TaskStore) GetTask(ctx context.Context, tenantID, taskID string) (*entity.Task, error) {
	value, err := s.client.Query(ctx, fnTasksGet, map[string]interface{}{
		"tenantId": tenantID,
		"id":       taskID,
	})
	if err != nil {
		return nil, err
	}
	if isNull(value) {
		return nil, fmt.Errorf("task %s not found", taskID)
	}
	return decodeTask(value)
}

func (s *TaskStore) ListTasks(ctx context.Context, tenantID string, filter output.TaskFilter) ([]entity.Task, error) {
	args := map[string]interface{}{"tenantId": tenantID}
	if filter.Status != "" {
		args["status"] = string(filter.Status)
	}
	if filter.Label != "" {
		args["label"] = string(filter.Label)
	}
	if filter.Priority != "" {
		args["priority"] = string(filter.Priority)
	}
	if filter.Limit > 0 {
		args["limit"] = filter.Limit
	}

	value, err := s.client.Query(ctx, fnTasksList, args)
	if err != nil {
		return nil, err
	}

	var docs []taskDoc
	if err := json.Unmarshal(value, &docs); err != nil {
		return nil, fmt.Errorf("decode task list: %w", err)
	}

	tasks := make([]entity.Task, 0, len(docs))
	for _, doc := range docs {
		tasks = append(tasks, doc.toEntity())
	}
	return tasks, nil
}

func (s *TaskStore) UpdateTask(ctx context.Context, params output.UpdateTaskParams) (*entity.Task, error) {
	args := map[string]interface{}{
		"tenantId": params.TenantID,
		"id":       params.TaskID,
	}
	if params.Title != nil {
		args["title"] = *params.Title
	}
	if params.Description != nil {
		args["description"] = *params.Description
	}
	if params.Status != nil {
		args["status"] = string(*params.Status)
	}
	if params.Label != nil {
		args["label"] = string(*params.Label)
	}
	if params.Priority != nil {
		args["priority"] = string(*params.Priority)
	}

	value, err := s.client.Mutation(ctx, fnTasksUpdate, args)
	if err != nil {
		return nil, err
	}
	return decodeTask(value)
}

func (s *TaskStore) DeleteTask(ctx context.Context, tenantID, taskID string) error {
	_, err := s.client.Mutation(ctx, fnTasksRemove, map[string]interface{}{
		"tenantId": tenantID,
		"id":       taskID,
	})
	return err
}

func decodeTask(value json.RawMessage) (*entity.Task, error) {
	var doc taskDoc
	if err := json.Unmarshal(value, &doc); err != nil {
		return nil, fmt.Errorf("decode task: %w", err)
	}
	task := doc.toEntity()
	return &task, nil
}

func isNull(value json.RawMessage) bool {
	return len(value) == 0 || string(value) == "null"
}
