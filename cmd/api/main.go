package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"review-mine/internal/app"
	"review-mine/internal/config"
	apihttp "review-mine/internal/http"
	"review-mine/internal/i18n"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	catalog, err := i18n.NewCatalog(cfg.DefaultLanguage)
	if err != nil {
		logger.Fatal("translations", zap.Error(err))
	}

	a, err := app.Build(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("build app", zap.Error(err))
	}
	defer a.Close()

	// Carga inicial: si falla no abortamos, el store reintenta en el proximo request.
	if _, err := a.Store.Load(ctx); err != nil {
		logger.Warn("initial dataset load failed", zap.Error(err))
	}

	networkHandler := apihttp.NewNetworkHandler(logger, a.Store, cfg.PageSize)
	profileHandler := apihttp.NewProfileHandler(logger, a.Store, a.Feedback, a.Insights)
	metaHandler := apihttp.NewMetaHandler(logger)
	router := apihttp.NewRouter(logger, catalog, cfg.SelfProfileID, networkHandler, profileHandler, metaHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Warn("server shutdown", zap.Error(err))
		}
	}()

	logger.Info("starting server", zap.String("port", cfg.HTTPPort), zap.String("storage", cfg.StorageBackend), zap.String("llm", cfg.LLMProvider))

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server error", zap.Error(err))
	}
}
