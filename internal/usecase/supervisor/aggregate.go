package supervisor

import (
	"strings"

	"task-agent/internal/domain/entity"
)

// turnAggregate is everything extracted from one sub-agent transcript.
type turnAggregate struct {
	Trace   []entity.ToolTraceEntry
	UI      []entity.UIComponent
	TaskIDs []string
}

// aggregate walks a sub-agent transcript, pairs tool calls with their
// observations, and collects the UI payloads and task IDs the turn produced.
func aggregate(transcript []entity.Message) turnAggregate {
	var agg turnAggregate
	pending := map[string]entity.ToolCall{}
	seen := map[string]bool{}

	for _, msg := range transcript {
		switch msg.Role {
		case entity.RoleAssistant:
			for _, tc := range msg.ToolCalls {
				pending[tc.ID] = tc
			}
		case entity.RoleTool:
			call, ok := pending[msg.ToolCallID]
			if !ok {
				continue
			}
			delete(pending, msg.ToolCallID)

			agg.Trace = append(agg.Trace, entity.ToolTraceEntry{
				Tool:      call.Name,
				Arguments: call.Arguments,
				Result:    msg.Content,
				IsError:   strings.HasPrefix(msg.Content, "Error: "),
			})

			env, ok := entity.ParseEnvelope(msg.Content)
			if !ok || env.UI == nil {
				continue
			}
			agg.UI = append(agg.UI, *env.UI)
			for _, id := range taskIDsFromProps(env.UI.Props) {
				if !seen[id] {
					seen[id] = true
					agg.TaskIDs = append(agg.TaskIDs, id)
				}
			}
		}
	}
	return agg
}

// taskIDsFromProps digs task IDs out of the component props the tools emit:
// a single "task" object or a "tasks" array of objects.
func taskIDsFromProps(props map[string]interface{}) []string {
	var ids []string

	if task, ok := props["task"].(map[string]interface{}); ok {
		if id, ok := task["id"].(string); ok && id != "" {
			ids = append(ids, id)
		}
	}

	if tasks, ok := props["tasks"].([]interface{}); ok {
		for _, raw := range tasks {
			task, ok := raw.(map[string]interface{})
			if !ok {
				continue
			}
			if id, ok := task["id"].(string); ok && id != "" {
				ids = append(ids, id)
			}
		}
	}

	return ids
}
