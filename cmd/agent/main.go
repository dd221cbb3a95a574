package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"task-agent/internal/di"
	"task-agent/internal/domain/entity"
	"task-agent/internal/infrastructure/env"
	"task-agent/internal/infrastructure/userinteraction"
)

func main() {
	envService := env.NewEnvService()

	console := userinteraction.NewConsoleUserInteraction()

	container, err := di.NewContainer(di.Config{
		APIKey:          envService.MustGet("OPENAI_API_KEY"),
		Model:           envService.GetWithDefault("MODEL_NAME", "gpt-4o-mini"),
		BaseURL:         envService.Get("OPENAI_BASE_URL"),
		ConvexURL:       envService.MustGet("CONVEX_URL"),
		ConvexDeployKey: envService.MustGet("CONVEX_DEPLOY_KEY"),
		LogLevel:        envService.GetWithDefault("LOG_LEVEL", "info"),
		UI:              console,
	})
	if err != nil {
		log.Fatalf("initialization failed: %v", err)
	}
	defer container.Close()

	turn := entity.TurnContext{
		TenantID: envService.MustGet("TENANT_ID"),
		UserID:   envService.MustGet("USER_ID"),
		PersonID: envService.Get("PERSON_ID"),
	}

	thread := entity.NewThread()
	container.Logger.Info("Session started", "thread", thread.ID, "tenant", turn.TenantID)

	fmt.Println("Task assistant ready. Type 'exit' to quit.")

	for {
		utterance, err := console.ReadUtterance(context.Background())
		if err != nil {
			container.Logger.Error("Input read failed", "error", err)
			os.Exit(1)
		}
		if utterance == "" {
			continue
		}
		if strings.EqualFold(utterance, "exit") || strings.EqualFold(utterance, "quit") {
			fmt.Println("Bye!")
			return
		}

		ctx := entity.WithTurnContext(context.Background(), turn)

		resp, err := container.Assistant.Respond(ctx, thread, utterance)
		if err != nil {
			container.Logger.Error("Turn failed", "error", err)
			fmt.Printf("\nSomething went wrong: %v\n", err)
			continue
		}

		console.ShowResponse(ctx, resp)
	}
}
