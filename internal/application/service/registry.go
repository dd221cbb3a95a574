package service

import (
	"task-agent/internal/application/port/output"
	"task-agent/internal/domain/entity"
)

var _ output.ToolRegistry = (*ToolRegistryImpl)(nil)

type ToolRegistryImpl struct {
	tools map[entity.ToolName]output.ToolPort
}

func NewToolRegistry() *ToolRegistryImpl {
	return &ToolRegistryImpl{
		tools: make(map[entity.ToolName]output.ToolPort),
	}
}

func (r *ToolRegistryImpl) Register(tool output.ToolPort) {
	r.tools[tool.Name()] = tool
}

func (r *ToolRegistryImpl) Get(name entity.ToolName) (output.ToolPort, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

func (r *ToolRegistryImpl) All() []output.ToolPort {
	result := make([]output.ToolPort, 0, len(r.tools))
	for _, tool := range r.tools {
		result = append(result, tool)
	}
	return result
}

func (r *ToolRegistryImpl) Definitions() []entity.ToolDefinition {
	result := make([]entity.ToolDefinition, 0, len(r.tools))
	for _, tool := range r.tools {
		result = append(result, entity.ToolDefinition{
			Name:        tool.Name().String(),
			Description: tool.Description(),
			Parameters:  tool.Parameters(),
		})
	}
	return result
}

var _ output.SubAgentRegistry = (*SubAgentRegistryImpl)(nil)

type SubAgentRegistryImpl struct {
	agents map[entity.AgentType]output.SubAgent
}

func NewSubAgentRegistry() *SubAgentRegistryImpl {
	return &SubAgentRegistryImpl{
		agents: make(map[entity.AgentType]output.SubAgent),
	}
}

func (r *SubAgentRegistryImpl) Register(agent output.SubAgent) {
	r.agents[agent.GetType()] = agent
}

func (r *SubAgentRegistryImpl) Get(agentType entity.AgentType) (output.SubAgent, bool) {
	agent, ok := r.agents[agentType]
	return agent, ok
}

func (r *SubAgentRegistryImpl) List() []output.SubAgent {
	result := make([]output.SubAgent, 0, len(r.agents))
	for _, agent := range r.agents {
		result = append(result, agent)
	}
	return result
}
