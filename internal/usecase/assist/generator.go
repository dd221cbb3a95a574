package assist

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"task-agent/internal/application/port/output"
	"task-agent/internal/infrastructure/prompts"
)

const (
	maxTitleLen       = 60
	defaultSuggestion = 3
)

// Generator produces the small auxiliary texts around a turn: a short thread
// title after the first exchange and follow-up suggestion chips.
type Generator struct {
	llm    output.LLMPort
	logger output.LoggerPort
}

func New(llm output.LLMPort, logger output.LoggerPort) *Generator {
	return &Generator{llm: llm, logger: logger}
}

// ThreadTitle derives a short title from the opening utterance.
func (g *Generator) ThreadTitle(ctx context.Context, utterance string) (string, error) {
	raw, err := g.llm.GenerateStructured(ctx, output.StructuredRequest{
		System:     prompts.TitlesPrompt,
		Prompt:     utterance,
		SchemaName: "thread_title",
		Schema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"title": map[string]interface{}{"type": "string"},
			},
			"required":             []string{"title"},
			"additionalProperties": false,
		},
	})
	if err != nil {
		return "", fmt.Errorf("title generation failed: %w", err)
	}

	var parsed struct {
		Title string `json:"title"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("title response is not valid JSON: %w", err)
	}

	title := strings.TrimSpace(parsed.Title)
	if title == "" {
		return "", fmt.Errorf("title generation returned empty title")
	}
	if len(title) > maxTitleLen {
		title = title[:maxTitleLen]
	}
	return title, nil
}

// Suggestions proposes short follow-up utterances the user might send next,
// given the assistant's last answer.
func (g *Generator) Suggestions(ctx context.Context, lastAnswer string, count int) ([]string, error) {
	if count <= 0 {
		count = defaultSuggestion
	}

	raw, err := g.llm.GenerateStructured(ctx, output.StructuredRequest{
		System:     prompts.SuggestionsPrompt,
		Prompt:     lastAnswer,
		SchemaName: "followup_suggestions",
		Schema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"suggestions": map[string]interface{}{
					"type":  "array",
					"items": map[string]interface{}{"type": "string"},
				},
			},
			"required":             []string{"suggestions"},
			"additionalProperties": false,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("suggestion generation failed: %w", err)
	}

	var parsed struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("suggestion response is not valid JSON: %w", err)
	}

	out := make([]string, 0, count)
	for _, s := range parsed.Suggestions {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
		if len(out) == count {
			break
		}
	}
	return out, nil
}
