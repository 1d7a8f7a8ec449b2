package main

import (
	"context"
	"flag"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"netadvisor/internal/advisor"
	"netadvisor/internal/config"
	"netadvisor/internal/domain"
	"netadvisor/internal/embedding/openai"
	"netadvisor/internal/embedding/tfidf"
	"netadvisor/internal/index"
	"netadvisor/internal/knowledge"
	"netadvisor/internal/preview"
	"netadvisor/internal/tui"
)

// The console runs the full pipeline in-process and queries the advisor
// directly, without the HTTP layer.
func main() {
	_ = godotenv.Load()

	cfgPath := flag.String("config", "config.yaml", "Path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	var emb domain.Embedder
	switch cfg.Embedder.Type {
	case "openai", "":
		client, err := openai.NewClient(openai.Config{
			APIKeyEnv: cfg.Embedder.APIKeyEnv,
			Model:     cfg.Embedder.Model,
			Timeout:   time.Duration(cfg.Embedder.Timeout) * time.Second,
		})
		if err != nil {
			log.Fatalf("openai embedder init failed: %v", err)
		}
		emb = client
	case "tfidf":
		emb = tfidf.NewEmbedder()
	default:
		log.Fatalf("unknown embedder type: %s", cfg.Embedder.Type)
	}

	previewer, err := preview.NewGenerator(preview.Config{
		APIKeyEnv:   cfg.Embedder.APIKeyEnv,
		Model:       cfg.Preview.Model,
		Temperature: cfg.Preview.Temperature,
		Timeout:     time.Duration(cfg.Preview.Timeout) * time.Second,
	})
	if err != nil {
		log.Fatalf("preview generator init failed: %v", err)
	}

	base, err := knowledge.Load(cfg.Dataset)
	if err != nil {
		log.Fatalf("failed to load knowledge dataset: %v", err)
	}

	// The TUI owns the terminal, so component logging is discarded here.
	logger := zap.NewNop()
	store, err := index.Build(context.Background(), base, emb, logger)
	if err != nil {
		log.Fatalf("index build failed: %v", err)
	}

	contexts := advisor.NewContexts()
	svc := advisor.New(
		base,
		store,
		advisor.NewResolver(contexts),
		advisor.NewSynthesizer(base.Commands(), advisor.PatternFiller{}),
		previewer,
		logger,
	)

	if _, err := tea.NewProgram(tui.New(svc)).Run(); err != nil {
		log.Fatal(err)
	}
}
