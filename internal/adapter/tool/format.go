package tool

import (
	"fmt"

	"task-agent/internal/domain/entity"
)

func taskProps(task *entity.Task) map[string]interface{} {
	props := map[string]interface{}{
		"id":       task.ID,
		"title":    task.Title,
		"status":   string(task.Status),
		"label":    string(task.Label),
		"priority": string(task.Priority),
	}
	if task.Description != "" {
		props["description"] = task.Description
	}
	return props
}

func taskListProps(tasks []entity.Task) map[string]interface{} {
	rows := make([]interface{}, 0, len(tasks))
	for i := range tasks {
		rows = append(rows, taskProps(&tasks[i]))
	}
	return map[string]interface{}{
		"tasks": rows,
		"count": len(tasks),
	}
}

func taskLine(task *entity.Task) string {
	return fmt.Sprintf("%s [%s/%s/%s] %s", task.ID, task.Status, task.Label, task.Priority, task.Title)
}

func enumValues[T ~string](values []T) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		result = append(result, string(v))
	}
	return result
}

func statusEnum() []string   { return enumValues(entity.AllStatuses()) }
func labelEnum() []string    { return enumValues(entity.AllLabels()) }
func priorityEnum() []string { return enumValues(entity.AllPriorities()) }
