package entity

import (
	"fmt"
	"time"
)

type TaskStatus string

const (
	TaskStatusBacklog    TaskStatus = "backlog"
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusDone       TaskStatus = "done"
	TaskStatusCanceled   TaskStatus = "canceled"
)

type TaskLabel string

const (
	TaskLabelBug           TaskLabel = "bug"
	TaskLabelFeature       TaskLabel = "feature"
	TaskLabelDocumentation TaskLabel = "documentation"
)

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// Defaults applied when the user does not specify the optional fields.
const (
	DefaultTaskStatus   = TaskStatusTodo
	DefaultTaskLabel    = TaskLabelFeature
	DefaultTaskPriority = TaskPriorityMedium
)

// Task mirrors a document in the remote task database. The remote side owns
// all invariants (uniqueness, existence, tenant scoping); this type is only a
// typed view of what comes back over the wire.
type Task struct {
	ID          string       `json:"id"`
	TenantID    string       `json:"tenantId"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Status      TaskStatus   `json:"status"`
	Label       TaskLabel    `json:"label"`
	Priority    TaskPriority `json:"priority"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusBacklog, TaskStatusTodo, TaskStatusInProgress, TaskStatusDone, TaskStatusCanceled:
		return true
	}
	return false
}

func (l TaskLabel) Valid() bool {
	switch l {
	case TaskLabelBug, TaskLabelFeature, TaskLabelDocumentation:
		return true
	}
	return false
}

func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

// NormalizeStatus substitutes the default for an empty value and rejects
// anything outside the known set.
func NormalizeStatus(s string) (TaskStatus, error) {
	if s == "" {
		return DefaultTaskStatus, nil
	}
	status := TaskStatus(s)
	if !status.Valid() {
		return "", fmt.Errorf("invalid status %q (expected one of: backlog, todo, in-progress, done, canceled)", s)
	}
	return status, nil
}

func NormalizeLabel(s string) (TaskLabel, error) {
	if s == "" {
		return DefaultTaskLabel, nil
	}
	label := TaskLabel(s)
	if !label.Valid() {
		return "", fmt.Errorf("invalid label %q (expected one of: bug, feature, documentation)", s)
	}
	return label, nil
}

func NormalizePriority(s string) (TaskPriority, error) {
	if s == "" {
		return DefaultTaskPriority, nil
	}
	priority := TaskPriority(s)
	if !priority.Valid() {
		return "", fmt.Errorf("invalid priority %q (expected one of: low, medium, high)", s)
	}
	return priority, nil
}

func AllStatuses() []TaskStatus {
	return []TaskStatus{TaskStatusBacklog, TaskStatusTodo, TaskStatusInProgress, TaskStatusDone, TaskStatusCanceled}
}

func AllLabels() []TaskLabel {
	return []TaskLabel{TaskLabelBug, TaskLabelFeature, TaskLabelDocumentation}
}

func AllPriorities() []TaskPriority {
	return []TaskPriority{TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh}
}
