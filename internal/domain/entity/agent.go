package entity

type AgentType string

const (
	AgentTypeSupervisor AgentType = "supervisor"
	AgentTypeTasks      AgentType = "tasks"
	AgentTypeChat       AgentType = "chat"
)

// AgentOutcome is what a sub-agent hands back to the supervisor: the final
// text for the user plus the transcript of everything the agent did this
// turn, so the supervisor can mine tool calls and tool results out of it.
type AgentOutcome struct {
	FinalText  string
	Transcript []Message
	Iterations int
}
