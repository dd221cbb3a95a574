package output

import (
	"context"

	"task-agent/internal/domain/entity"
)

// SubAgent is one of the specialized agents the supervisor can delegate a
// turn to. Execute sees the whole thread so far plus the new utterance.
type SubAgent interface {
	GetType() entity.AgentType
	GetDescription() string
	Execute(ctx context.Context, thread *entity.Thread, utterance string) (*entity.AgentOutcome, error)
}

type SubAgentRegistry interface {
	Register(agent SubAgent)
	Get(agentType entity.AgentType) (SubAgent, bool)
	List() []SubAgent
}
