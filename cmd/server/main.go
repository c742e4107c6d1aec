package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"

	"github.com/relaykit/linechat/internal/app"
	"github.com/relaykit/linechat/internal/config"
	"github.com/relaykit/linechat/internal/log"
)

func main() {
	defaults := config.Default()

	var (
		cfgPath   string
		overrides config.Config
	)
	fs := flag.NewFlagSet("linechat-server", flag.ExitOnError)
	fs.StringVar(&cfgPath, "config", "", "path to config file")
	fs.StringVar(&overrides.Addr, "addr", "", "chat listen address (default "+defaults.Addr+")")
	fs.StringVar(&overrides.OpsAddr, "ops-addr", "", "ops listen address (default "+defaults.OpsAddr+")")
	fs.DurationVar(&overrides.IdleTimeout, "idle-timeout", 0, "kick sessions silent for longer than this")
	fs.DurationVar(&overrides.PollInterval, "poll-interval", 0, "read poll interval")
	fs.DurationVar(&overrides.WriteTimeout, "write-timeout", 0, "per-send write deadline")
	fs.DurationVar(&overrides.ShutdownTimeout, "shutdown-timeout", 0, "graceful shutdown timeout")
	fs.StringVar(&overrides.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	_ = fs.Parse(os.Args[1:])

	bootLogger := log.New(defaults.LogLevel)
	cfg, path, err := config.Load(bootLogger, cfgPath)
	if err != nil {
		bootLogger.Fatal().Err(err).Str("path", path).Msg("failed to load config")
	}
	cfg.UpdateFrom(overrides)

	logger := log.New(cfg.LogLevel)
	logger.Info().Str("config", path).Msg("configuration loaded")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application := app.New(cfg, logger)
	if err := application.Run(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server exited with error")
	}
	logger.Info().Msg("server stopped")
}
