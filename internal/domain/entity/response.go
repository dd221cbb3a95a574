package entity

// ToolTraceEntry is one tool call paired with its observation, extracted from
// a sub-agent transcript.
type ToolTraceEntry struct {
	Tool      string `json:"tool"`
	Arguments string `json:"arguments"`
	Result    string `json:"result"`
	IsError   bool   `json:"isError"`
}

// StructuredResponse is the single answer the assistant produces per turn:
// the text for the user, the UI payloads collected from tool results, the
// tool trace for debugging, and the task IDs the turn touched.
type StructuredResponse struct {
	ThreadID    string           `json:"threadId"`
	Agent       AgentType        `json:"agent"`
	Text        string           `json:"text"`
	UI          []UIComponent    `json:"ui,omitempty"`
	ToolTrace   []ToolTraceEntry `json:"toolTrace,omitempty"`
	TaskIDs     []string         `json:"taskIds,omitempty"`
	Suggestions []string         `json:"suggestions,omitempty"`
}
