package output

import (
	"context"

	"task-agent/internal/domain/entity"
)

// TaskStorePort is the contract to the remote task database. Every call is
// tenant-scoped; the remote side enforces existence and isolation and this
// side only surfaces its errors.
type TaskStorePort interface {
	CreateTask(ctx context.Context, params CreateTaskParams) (*entity.Task, error)
	GetTask(ctx context.Context, tenantID, taskID string) (*entity.Task, error)
	ListTasks(ctx context.Context, tenantID string, filter TaskFilter) ([]entity.Task, error)
	UpdateTask(ctx context.Context, params UpdateTaskParams) (*entity.Task, error)
	DeleteTask(ctx context.Context, tenantID, taskID string) error
}

type CreateTaskParams struct {
	TenantID    string
	Title       string
	Description string
	Status      entity.TaskStatus
	Label       entity.TaskLabel
	Priority    entity.TaskPriority
}

type TaskFilter struct {
	Status   entity.TaskStatus
	Label    entity.TaskLabel
	Priority entity.TaskPriority
	Limit    int
}

// UpdateTaskParams carries only the fields to change; nil means leave as is.
type UpdateTaskParams struct {
	TenantID    string
	TaskID      string
	Title       *string
	Description *string
	Status      *entity.TaskStatus
	Label       *entity.TaskLabel
	Priority    *entity.TaskPriority
}
