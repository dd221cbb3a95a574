package tool

import (
	"context"
	"encoding/json"
	"fmt"

	"task-agent/internal/application/port/output"
	"task-agent/internal/domain/entity"
	"task-agent/internal/infrastructure/prompts"
)

// SuggestTasksTool asks the model to break a goal down into concrete tasks.
// It does not write anything; the user picks which suggestions to create.
type SuggestTasksTool struct {
	llm    output.LLMPort
	logger output.LoggerPort
	args   argValidator
}

func NewSuggestTasksTool(llm output.LLMPort, logger output.LoggerPort) *SuggestTasksTool {
	return &SuggestTasksTool{llm: llm, logger: logger}
}

func (t *SuggestTasksTool) Name() entity.ToolName { return entity.ToolTaskSuggest }
func (t *SuggestTasksTool) Description() string {
	return "Suggest concrete tasks for a goal the user describes, without creating them. Use this when the user asks for help planning or breaking down work. Returns up to 'count' suggestions with proposed titles, labels, and priorities."
}
func (t *SuggestTasksTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"goal": map[string]interface{}{
				"type":        "string",
				"minLength":   1,
				"description": "The goal to break down into tasks",
			},
			"count": map[string]interface{}{
				"type":        "integer",
				"minimum":     1,
				"maximum":     10,
				"description": "How many suggestions to produce (default: 5)",
			},
		},
		"required":             []string{"goal"},
		"additionalProperties": false,
	}
}

type taskSuggestion struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Label       string `json:"label"`
	Priority    string `json:"priority"`
}

func (t *SuggestTasksTool) Execute(ctx context.Context, arguments string) (string, error) {
	if err := t.args.validate(t.Parameters(), arguments); err != nil {
		return "", err
	}

	var input struct {
		Goal  string `json:"goal"`
		Count int    `json:"count"`
	}
	if err := json.Unmarshal([]byte(arguments), &input); err != nil {
		return "", err
	}

	count := input.Count
	if count == 0 {
		count = 5
	}

	raw, err := t.llm.GenerateStructured(ctx, output.StructuredRequest{
		System:     prompts.BreakdownPrompt,
		Prompt:     fmt.Sprintf("Break this goal down into at most %d tasks: %s", count, input.Goal),
		SchemaName: "task_suggestions",
		Schema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"suggestions": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"title":       map[string]interface{}{"type": "string"},
							"description": map[string]interface{}{"type": "string"},
							"label":       map[string]interface{}{"type": "string", "enum": labelEnum()},
							"priority":    map[string]interface{}{"type": "string", "enum": priorityEnum()},
						},
						"required":             []string{"title", "description", "label", "priority"},
						"additionalProperties": false,
					},
				},
			},
			"required":             []string{"suggestions"},
			"additionalProperties": false,
		},
	})
	if err != nil {
		return "", err
	}

	var result struct {
		Suggestions []taskSuggestion `json:"suggestions"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", fmt.Errorf("decode suggestions: %w", err)
	}

	if len(result.Suggestions) == 0 {
		return "No task suggestions for this goal", nil
	}
	if len(result.Suggestions) > count {
		result.Suggestions = result.Suggestions[:count]
	}

	rows := make([]interface{}, 0, len(result.Suggestions))
	text := fmt.Sprintf("Suggested %d task(s) for %q:", len(result.Suggestions), input.Goal)
	for i, s := range result.Suggestions {
		rows = append(rows, map[string]interface{}{
			"title":       s.Title,
			"description": s.Description,
			"label":       s.Label,
			"priority":    s.Priority,
		})
		text += fmt.Sprintf("\n%d. %s [%s/%s]", i+1, s.Title, s.Label, s.Priority)
	}

	return entity.Envelope{
		Text: text,
		UI:   &entity.UIComponent{Name: entity.UITaskSuggestions, Props: map[string]interface{}{"suggestions": rows}},
	}.Encode()
}
