package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/daehan-lim/moneychat/internal/ai"
	"github.com/daehan-lim/moneychat/internal/config"
	"github.com/daehan-lim/moneychat/internal/database"
	"github.com/daehan-lim/moneychat/internal/handlers"
	"github.com/daehan-lim/moneychat/internal/logger"
	"github.com/daehan-lim/moneychat/internal/parser"
	"github.com/daehan-lim/moneychat/internal/recurring"
	"github.com/daehan-lim/moneychat/internal/repository"
)

func main() {
	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if cfg.DatabaseURI == "" {
		log.Fatal().Msg("DATABASE_URI is required")
	}
	if cfg.AIAPIKey == "" {
		log.Fatal().Msg("AI_API_KEY is required")
	}

	providerCfg, err := ai.NewProviderConfig(
		ai.ProviderKind(cfg.AIProvider),
		cfg.AIAPIKey, cfg.AIBaseURL, cfg.AIModel, cfg.AIVisionModel,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to resolve AI provider")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := database.New(ctx, cfg.DatabaseURI)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()
	log.Info().Msg("connected to database")

	if err := db.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}
	log.Info().Msg("database migrations completed")

	aiClient := ai.New(providerCfg)
	log.Info().Str("provider", cfg.AIProvider).Str("model", providerCfg.Model).Msg("AI client initialized")

	categoryRepo := repository.NewCategoryRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)

	h := handlers.New(
		parser.New(aiClient),
		categoryRepo,
		accountRepo,
		transactionRepo,
		recurring.NewMaterializer(transactionRepo),
	)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(handlers.RequestLogging(log), gin.Recovery())
	h.Register(router)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info().Msg("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown error")
		}
		cancel()
	}()

	log.Info().Str("port", cfg.Port).Msg("starting server")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server error")
	}
}
