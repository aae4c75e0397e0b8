package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"review-mine/internal/config"
	"review-mine/internal/db"
	"review-mine/internal/llm"
	"review-mine/internal/repository"
	"review-mine/internal/seed"
	"review-mine/internal/service"
)

// App agrupa los servicios armados a partir de la configuracion.
// Lo comparten el servidor HTTP y la CLI.
type App struct {
	Store    *service.DatasetStore
	Feedback *service.FeedbackService
	Insights *service.InsightService

	closers []func()
}

// Close libera conexiones en orden inverso al de creacion.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// Build conecta storage, seed y LLM segun cfg.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	a := &App{}

	docs, err := a.newDocumentStore(ctx, cfg, logger)
	if err != nil {
		a.Close()
		return nil, err
	}

	llmClient, err := a.newLLMClient(ctx, cfg, logger)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.Store = service.NewDatasetStore(logger, docs, NewSeedSource(cfg), cfg.DatasetKey)
	a.Feedback = service.NewFeedbackService(a.Store, logger)
	a.Insights = service.NewInsightService(llmClient, a.Store, logger)
	return a, nil
}

// NewSeedSource usa SEED_URL si esta configurado y si no el seed embebido.
func NewSeedSource(cfg *config.Config) seed.Source {
	if cfg.SeedURL != "" {
		return seed.NewHTTPSource(cfg.SeedURL, &http.Client{Timeout: 15 * time.Second})
	}
	return seed.NewEmbeddedSource()
}

func (a *App) newDocumentStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.DocumentStore, error) {
	switch cfg.StorageBackend {
	case config.StorageRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		a.closers = append(a.closers, func() { _ = client.Close() })

		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := client.Ping(ctxPing).Err(); err != nil {
			return nil, fmt.Errorf("redis ping: %w", err)
		}
		logger.Info("storage backend ready", zap.String("backend", cfg.StorageBackend), zap.String("addr", cfg.RedisAddr))
		return repository.NewRedisDocumentStore(client), nil

	case config.StoragePostgres:
		pool, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("db connect: %w", err)
		}
		a.closers = append(a.closers, pool.Close)

		store := repository.NewPgDocumentStore(pool)
		if err := store.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("ensure schema: %w", err)
		}
		logger.Info("storage backend ready", zap.String("backend", cfg.StorageBackend))
		return store, nil

	default:
		logger.Warn("using in-memory storage; edits are lost on restart")
		return repository.NewMemoryDocumentStore(), nil
	}
}

func (a *App) newLLMClient(ctx context.Context, cfg *config.Config, logger *zap.Logger) (llm.LLMClient, error) {
	switch cfg.LLMProvider {
	case config.LLMProviderGenAI:
		client, err := llm.NewGenAIClient(ctx, cfg.LLMAPIKey, cfg.LLMModel)
		if err != nil {
			return nil, fmt.Errorf("genai client: %w", err)
		}
		return client, nil
	case config.LLMProviderOpenAI:
		return llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, logger), nil
	default:
		logger.Warn("llm provider disabled; insights will use the fallback message")
		return llm.DisabledClient{Reason: "llm provider disabled"}, nil
	}
}
