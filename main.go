// File: studyplanner/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studyplanner/config"
	"studyplanner/handlers"
	"studyplanner/routes"
	ai "studyplanner/services/intelligence"
	"studyplanner/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	completer, closeAI := newCompleter(logger)
	defer closeAI()

	pageHandler := handlers.NewPageHandler(completer)
	scheduleHandler := handlers.NewScheduleHandler(completer)
	aiHandler := handlers.NewDefaultAIHandler(completer)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Pages.
		IndexHandler:    pageHandler.IndexHandler,
		ChatPageHandler: pageHandler.ChatPageHandler,
		HealthHandler:   pageHandler.HealthHandler,

		// Schedule endpoints.
		ScheduleHandler: scheduleHandler.GenerateSchedule,

		// AI endpoints.
		AIChatHandler: aiHandler.HandleChat,
		QuizHandler:   aiHandler.HandleQuiz,
	}

	router, err := routes.NewRouter(handlerBundle, config.AppConfig.MaxRequestsPerMin, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to build router: %v", err)
	}

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

// newCompleter wires the Gemini client and optional reply cache. Without a
// credential, or if the client cannot be built, the service runs offline.
func newCompleter(logger *zap.Logger) (*ai.CompletionService, func()) {
	opts := []ai.Option{
		ai.WithLogger(logger),
		ai.WithTimeout(config.AppConfig.AITimeout),
		ai.WithModelName(config.AppConfig.GeminiModel),
	}

	if !config.AIEnabled() {
		logger.Info("main: no Gemini API key configured, AI endpoints run in offline mode")
		return ai.NewCompletionService(nil, opts...), func() {}
	}

	ctx := context.Background()
	gemini, err := ai.NewGeminiClient(ctx, config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
	if err != nil {
		logger.Warn("main: Gemini unavailable, falling back to offline mode", zap.Error(err))
		return ai.NewCompletionService(nil, opts...), func() {}
	}

	cleanup := []func(){func() { _ = gemini.Close() }}

	cacheClient, err := utils.NewCacheClient(ctx)
	switch {
	case err != nil:
		logger.Warn("main: reply cache disabled", zap.Error(err))
	case cacheClient != nil:
		opts = append(opts, ai.WithCache(ai.NewRedisReplyCache(cacheClient, config.AppConfig.AICacheTTL)))
		monitorCtx, stopMonitor := context.WithCancel(ctx)
		utils.StartHealthMonitor(monitorCtx, cacheClient, 60*time.Second)
		cleanup = append(cleanup, stopMonitor, func() { _ = cacheClient.Close() })
	}

	logger.Info("main: Gemini enabled", zap.String("model", gemini.Name()))
	return ai.NewCompletionService(gemini, opts...), func() {
		for _, fn := range cleanup {
			fn()
		}
	}
}
