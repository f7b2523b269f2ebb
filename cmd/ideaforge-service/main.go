package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ideaforge/ideaforge/server/internal/api"
	"github.com/ideaforge/ideaforge/server/internal/auth"
	"github.com/ideaforge/ideaforge/server/internal/config"
	"github.com/ideaforge/ideaforge/server/internal/llm"
	"github.com/ideaforge/ideaforge/server/internal/platform/factory"
	"github.com/ideaforge/ideaforge/server/internal/platform/logger"
)

func main() {
	// Optional build-target flag override (local | cloud)
	buildTarget := flag.String("build-target", "", "Override BUILD_TARGET (local, cloud)")
	flag.Parse()

	log := logger.New("ideaforge-service")

	cfg, err := config.New()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if *buildTarget != "" {
		cfg.BuildTarget = *buildTarget
		if err := cfg.ResolveDefaults(); err != nil {
			log.Fatal().Err(err).Msg("Invalid build-target override")
		}
	}

	log.Info().
		Str("build_target", cfg.BuildTarget).
		Str("db_driver", cfg.DBDriver).
		Int("http_port", cfg.HTTPPort).
		Msg("IdeaForge service starting…")

	// -------- Storage layer -----------------
	ctx := context.Background()
	storageLayer, err := factory.NewStorage(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Storage adapter unavailable")
	}

	// -------- Generation provider -----------
	generator, err := llm.New(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Generation provider unavailable")
	}

	// -------- Router & Server ---------------
	router := api.NewRouter(storageLayer, auth.NewDevAuthenticator(), generator)
	server := &http.Server{
		Addr:         cfg.GetHTTPAddr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // generation calls can run long
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server…")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}
