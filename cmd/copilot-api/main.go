// README: Entry point; loads config, wires engines, starts the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/xXWapixelXx/Uber-Copilot/internal/config"
	httptransport "github.com/xXWapixelXx/Uber-Copilot/internal/http"
	"github.com/xXWapixelXx/Uber-Copilot/internal/infra"
	"github.com/xXWapixelXx/Uber-Copilot/internal/modules/analytics"
	"github.com/xXWapixelXx/Uber-Copilot/internal/modules/assistant"
	"github.com/xXWapixelXx/Uber-Copilot/internal/modules/dataset"
	"github.com/xXWapixelXx/Uber-Copilot/internal/modules/forecast"
	"github.com/xXWapixelXx/Uber-Copilot/internal/modules/insights"
	"github.com/xXWapixelXx/Uber-Copilot/internal/modules/location"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := infra.NewLogger(cfg.Log.Level)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		logger.Fatal("database init", zap.Error(err))
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)
	defer redisClient.Close()

	provider := dataset.NewProvider(dataset.NewPGLoader(dbPool), logger)

	// Load the dataset up front so a bad table fails the boot, not the
	// first request.
	store, err := provider.Store(ctx)
	if err != nil {
		logger.Fatal("dataset load", zap.Error(err))
	}

	analyticsSvc := analytics.NewService(store)
	insightsSvc := insights.NewService(store, analyticsSvc)
	forecastSvc := forecast.NewService(store, analyticsSvc)
	locationSvc := location.NewService(store, logger)

	var gen assistant.TextGenerator
	if cfg.AI.GeminiKey != "" {
		gemini, err := assistant.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
		if err != nil {
			logger.Fatal("gemini init", zap.Error(err))
		}
		defer gemini.Close()
		gen = gemini
	} else {
		logger.Warn("GEMINI_API_KEY not set, assistant runs in fallback mode")
	}

	assistantSvc := assistant.NewService(
		gen,
		assistant.NewHistoryStore(redisClient),
		assistant.NewContextBuilder(analyticsSvc, insightsSvc),
		insightsSvc,
		forecastSvc,
		logger,
	)

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Store:     store,
		Analytics: analyticsSvc,
		Insights:  insightsSvc,
		Forecast:  forecastSvc,
		Location:  locationSvc,
		Assistant: assistantSvc,
		Logger:    logger,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", zap.Error(err))
		}
	}()

	logger.Info("listening", zap.String("addr", cfg.HTTP.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("serve", zap.Error(err))
	}
}
