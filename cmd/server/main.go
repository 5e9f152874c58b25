package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hvacinsights/genie-dashboard/internal/config"
	httpapi "github.com/hvacinsights/genie-dashboard/internal/http"
	"github.com/hvacinsights/genie-dashboard/internal/knowledge"
	"github.com/hvacinsights/genie-dashboard/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	zerolog.TimeFieldFormat = time.RFC3339
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := log.Level(level).With().Str("service", "genie-dashboard").Str("env", cfg.Env).Logger()

	kb := knowledge.Default()
	if cfg.KnowledgeBaseFile != "" {
		kb, err = knowledge.LoadFile(cfg.KnowledgeBaseFile)
		if err != nil {
			logger.Fatal().Err(err).Str("path", cfg.KnowledgeBaseFile).Msg("failed to load knowledge base")
		}
		logger.Info().Str("path", cfg.KnowledgeBaseFile).Msg("knowledge base loaded from file")
	} else {
		logger.Info().Msg("using built-in knowledge base")
	}

	sessions := session.NewRegistry(kb, session.Options{
		ReplyDelay:  cfg.ReplyDelay,
		IdleTTL:     cfg.SessionIdleTTL,
		MaxSessions: cfg.SessionMax,
		Logger:      logger,
	})
	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	sweeperDone := make(chan struct{})
	go func() {
		sessions.Run(ctx, cfg.SessionSweepEvery)
		close(sweeperDone)
	}()

	router := httpapi.Router(cfg, kb, sessions, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Dur("reply_delay", cfg.ReplyDelay).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Closing sessions first ends open event streams so Shutdown does not wait on them.
	stop()
	<-sweeperDone

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctxShutdown)
	logger.Info().Msg("server stopped")
}
