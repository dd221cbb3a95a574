package main

import (
	"log"
	"net/http"
	"time"

	"task-agent/internal/di"
	"task-agent/internal/infrastructure/env"
	"task-agent/internal/infrastructure/httpapi"
)

func main() {
	envService := env.NewEnvService()

	container, err := di.NewContainer(di.Config{
		APIKey:          envService.MustGet("OPENAI_API_KEY"),
		Model:           envService.GetWithDefault("MODEL_NAME", "gpt-4o-mini"),
		BaseURL:         envService.Get("OPENAI_BASE_URL"),
		ConvexURL:       envService.MustGet("CONVEX_URL"),
		ConvexDeployKey: envService.MustGet("CONVEX_DEPLOY_KEY"),
		LogLevel:        envService.GetWithDefault("LOG_LEVEL", "info"),
	})
	if err != nil {
		log.Fatalf("initialization failed: %v", err)
	}
	defer container.Close()

	addr := envService.GetWithDefault("HTTP_ADDR", ":8080")
	server := &http.Server{
		Addr:              addr,
		Handler:           httpapi.NewServer(container.Assistant, container.Logger).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	container.Logger.Info("HTTP server listening", "addr", addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
