package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/vovakirdan/room-relay/internal/app"
	"github.com/vovakirdan/room-relay/internal/config"
	"github.com/vovakirdan/room-relay/internal/log"
)

func main() {
	var overrides config.Config
	configPath := flag.String("config", "", "path to config file")
	flag.StringVar(&overrides.Addr, "addr", "", "HTTP listen address")
	flag.StringVar(&overrides.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	flag.StringVar(&overrides.PublicDir, "public-dir", "", "directory with the browser client, served at /")
	flag.DurationVar(&overrides.ShutdownTimeout, "shutdown-timeout", 0, "graceful shutdown timeout")
	flag.Parse()

	bootLog := log.New("info")
	cfg, resolvedPath, err := config.Load(bootLog, *configPath)
	if err != nil {
		bootLog.Fatal().Err(err).Msg("failed to load config")
	}
	cfg.UpdateFrom(overrides)

	logger := log.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info().
		Str("addr", cfg.Addr).
		Str("config", resolvedPath).
		Msg("starting room relay server")

	application := app.New(cfg, logger)
	if err := application.Run(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server exited with error")
	}
	logger.Info().Msg("server stopped")
}
