package entity

type ToolName string

const (
	ToolTaskCreate  ToolName = "task_create"
	ToolTaskList    ToolName = "task_list"
	ToolTaskGet     ToolName = "task_get"
	ToolTaskUpdate  ToolName = "task_update"
	ToolTaskDelete  ToolName = "task_delete"
	ToolTaskSuggest ToolName = "task_suggest"
)

func (t ToolName) String() string {
	return string(t)
}
