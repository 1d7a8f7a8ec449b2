package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

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
	"netadvisor/internal/server"
)

func main() {
	_ = godotenv.Load()

	cfgPath := flag.String("config", "config.yaml", "Path to YAML config file")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	emb := buildEmbedder(cfg, logger)

	previewer, err := preview.NewGenerator(preview.Config{
		APIKeyEnv:   cfg.Embedder.APIKeyEnv,
		Model:       cfg.Preview.Model,
		Temperature: cfg.Preview.Temperature,
		Timeout:     time.Duration(cfg.Preview.Timeout) * time.Second,
	})
	if err != nil {
		logger.Fatal("preview generator init failed", zap.Error(err))
	}

	base, err := knowledge.Load(cfg.Dataset)
	if err != nil {
		logger.Fatal("failed to load knowledge dataset", zap.Error(err))
	}
	logger.Info("knowledge dataset loaded",
		zap.Strings("vendors", base.Vendors()),
		zap.Int("commands", len(base.Commands())))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := index.Build(ctx, base, emb, logger)
	if err != nil {
		logger.Fatal("index build failed", zap.Error(err))
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

	srv := server.NewServer(svc, logger)
	if err := srv.Run(ctx, cfg.ListenAddr()); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

func buildEmbedder(cfg *config.AppConfig, logger *zap.Logger) domain.Embedder {
	switch cfg.Embedder.Type {
	case "openai", "":
		client, err := openai.NewClient(openai.Config{
			APIKeyEnv: cfg.Embedder.APIKeyEnv,
			Model:     cfg.Embedder.Model,
			Timeout:   time.Duration(cfg.Embedder.Timeout) * time.Second,
		})
		if err != nil {
			logger.Fatal("openai embedder init failed", zap.Error(err))
		}
		return client
	case "tfidf":
		return tfidf.NewEmbedder()
	default:
		logger.Fatal("unknown embedder type", zap.String("type", cfg.Embedder.Type))
		return nil
	}
}
