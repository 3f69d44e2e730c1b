package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"platefinder/cmd/config"
	migration "platefinder/cmd/database/migrate"
	"platefinder/internal/utils"
)

var configFile = flag.String("config", "config.yaml", "Path to configuration file")

func main() {
	flag.Parse()

	utils.LoadConfig(*configFile)

	model, err := initializeLLM()
	if err != nil {
		log.Fatalf("Failed to initialize LLM: %v", err)
	}

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	app, err := config.NewApp(db, model)
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	go startMetricsServer()

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	port := utils.GetConfig("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting API server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("API server error: %v", err)
	}
}

func initializeLLM() (llms.Model, error) {
	model := utils.GetConfig("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4-turbo"
	}

	llm, err := openai.New(
		openai.WithModel(model),
		openai.WithToken(utils.GetConfig("OPENAI_API_KEY")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OpenAI client: %w", err)
	}

	return llm, nil
}

func startMetricsServer() {
	port := utils.GetConfig("METRICS_PORT")
	if port == "" {
		port = "9090"
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	log.Printf("Starting metrics server on port %s", port)
	if err := http.ListenAndServe(":"+port, mux); err != nil {
		log.Printf("Metrics server error: %v", err)
	}
}
