package di

import (
	"fmt"

	"task-agent/internal/adapter/tool"
	"task-agent/internal/application/port/input"
	"task-agent/internal/application/port/output"
	"task-agent/internal/application/service"
	"task-agent/internal/infrastructure/convex"
	"task-agent/internal/infrastructure/llm/openai"
	"task-agent/internal/infrastructure/logger"
	"task-agent/internal/infrastructure/prompts"
	"task-agent/internal/usecase/agents/chat"
	"task-agent/internal/usecase/agents/tasks"
	"task-agent/internal/usecase/assist"
	"task-agent/internal/usecase/supervisor"
)

type Container struct {
	LLM       output.LLMPort
	TaskStore output.TaskStorePort
	Logger    output.LoggerPort
	Tools     output.ToolRegistry
	Agents    output.SubAgentRegistry
	Assistant input.Assistant
}

type Config struct {
	APIKey          string
	Model           string
	BaseURL         string
	ConvexURL       string
	ConvexDeployKey string
	LogLevel        string

	// UI is optional; the HTTP server runs without one.
	UI output.UserInteractionPort
}

func NewContainer(cfg Config) (*Container, error) {
	log, err := logger.NewLoggerAdapter(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	llmCfg := openai.DefaultConfig(cfg.APIKey, cfg.Model)
	if cfg.BaseURL != "" {
		llmCfg.BaseURL = cfg.BaseURL
	}
	llmCfg.Logger = log
	llm := openai.NewAdapter(llmCfg)

	convexCfg := convex.DefaultConfig(cfg.ConvexURL, cfg.ConvexDeployKey)
	convexCfg.Logger = log
	store := convex.NewTaskStore(convex.NewClient(convexCfg))

	tools := service.NewToolRegistry()
	registerTaskTools(tools, store, llm, log)

	agents := service.NewSubAgentRegistry()
	agents.Register(tasks.New(llm, tools, log, cfg.UI, prompts.TasksPrompt))
	agents.Register(chat.New(llm, log, prompts.ChatPrompt))

	generator := assist.New(llm, log)
	sup := supervisor.New(agents, generator, log, cfg.UI)

	return &Container{
		LLM:       llm,
		TaskStore: store,
		Logger:    log,
		Tools:     tools,
		Agents:    agents,
		Assistant: sup,
	}, nil
}

func (c *Container) Close() {
	if c.Logger != nil {
		c.Logger.Close()
	}
}

func registerTaskTools(registry *service.ToolRegistryImpl, store output.TaskStorePort, llm output.LLMPort, log output.LoggerPort) {
	registry.Register(tool.NewCreateTaskTool(store, log))
	registry.Register(tool.NewListTasksTool(store, log))
	registry.Register(tool.NewGetTaskTool(store, log))
	registry.Register(tool.NewUpdateTaskTool(store, log))
	registry.Register(tool.NewDeleteTaskTool(store, log))
	registry.Register(tool.NewSuggestTasksTool(llm, log))
}
