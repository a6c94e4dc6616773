package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/maxviazov/bjj-scoreboard/internal/config"
	"github.com/maxviazov/bjj-scoreboard/internal/handler"
	"github.com/maxviazov/bjj-scoreboard/internal/logger"
	"github.com/maxviazov/bjj-scoreboard/internal/scoreboard"
	"github.com/maxviazov/bjj-scoreboard/internal/service"
	"github.com/maxviazov/bjj-scoreboard/internal/terminal"
)

const defaultConfigPath = "config.yaml"

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("⚠️ .env not loaded: %v", err)
	}

	cfg, err := config.Load(configPath())
	if err != nil {
		log.Fatalf("❌ Config loading failed: %v", err)
	}

	// the console owns stdout in terminal mode
	if cfg.App.Mode == "terminal" && cfg.Logger.OutputTarget == "" {
		cfg.Logger.OutputTarget = "file"
	}
	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("❌ Logger initialization failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	match := scoreboard.NewFromInformation(cfg.Match)
	svc := service.NewScoreboardService(match, appLogger)
	appLogger.Info().
		Str("mode", cfg.App.Mode).
		Str("match_id", match.ID.String()).
		Int("mat", cfg.Match.MatNumber).
		Int("fight", cfg.Match.FightNumber).
		Msg("🚀 Scoreboard started")

	switch cfg.App.Mode {
	case "http":
		err = serveHTTP(ctx, cfg, svc, appLogger)
	default:
		err = terminal.New(svc, cfg.Terminal, appLogger).Run(ctx)
	}
	if err != nil {
		appLogger.Error().Err(err).Msg("scoreboard stopped with error")
		os.Exit(1)
	}
	appLogger.Info().Msg("scoreboard stopped")
}

// configPath prefers APP_CONFIG_PATH; the default file is optional.
func configPath() string {
	if p := os.Getenv("APP_CONFIG_PATH"); p != "" {
		return p
	}
	if _, err := os.Stat(defaultConfigPath); err != nil {
		return ""
	}
	return defaultConfigPath
}

func serveHTTP(ctx context.Context, cfg *config.Config, svc service.ScoreboardService, appLogger zerolog.Logger) error {
	if cfg.App.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	handler.Register(r, svc, cfg.HTTP.FeedInterval, appLogger)

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           r,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		// hijacked websocket connections see shutdown through the request context
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() {
		appLogger.Info().Str("addr", cfg.HTTP.Addr).Msg("http listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	appLogger.Info().Msg("shutting down http server")
	return srv.Shutdown(shutdownCtx)
}
