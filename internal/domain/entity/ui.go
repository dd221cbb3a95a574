package entity

import (
	"encoding/json"
	"strings"
)

// UIComponent is a rendering hint embedded in a tool result. The presentation
// layer decides how to draw it; this process only carries it through.
type UIComponent struct {
	Name  string                 `json:"name"`
	Props map[string]interface{} `json:"props"`
}

// Known component names produced by the task tools.
const (
	UITaskCard        = "task-card"
	UITaskTable       = "task-table"
	UITaskSuggestions = "task-suggestions"
)

// Envelope is the JSON shape a tool returns when it has more than a plain
// status string to say: a text part for the LLM plus an optional UI payload.
type Envelope struct {
	Text string       `json:"text"`
	UI   *UIComponent `json:"__ui__,omitempty"`
}

// Encode serializes the envelope for use as a tool observation.
func (e Envelope) Encode() (string, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ParseEnvelope tries to read a tool observation as an envelope. A result
// counts as an envelope only if it is a JSON object with a non-empty "text"
// field; everything else is treated as plain text.
func ParseEnvelope(observation string) (Envelope, bool) {
	trimmed := strings.TrimSpace(observation)
	if !strings.HasPrefix(trimmed, "{") {
		return Envelope{}, false
	}

	var env Envelope
	if err := json.Unmarshal([]byte(trimmed), &env); err != nil {
		return Envelope{}, false
	}
	if env.Text == "" {
		return Envelope{}, false
	}
	if env.UI != nil && env.UI.Name == "" {
		// A UI payload without a component name is malformed; keep the text.
		env.UI = nil
	}
	return env, true
}
