package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"

	"github.com/DjordjeVuckovic/fxbench/internal/apperr"
	"github.com/DjordjeVuckovic/fxbench/internal/bench/app"
	"github.com/DjordjeVuckovic/fxbench/internal/bench/config"
	"github.com/DjordjeVuckovic/fxbench/internal/bench/engine"
	"github.com/DjordjeVuckovic/fxbench/internal/bench/toolchain"
	"github.com/DjordjeVuckovic/fxbench/internal/router"
	"github.com/DjordjeVuckovic/fxbench/internal/server"
	"github.com/DjordjeVuckovic/fxbench/pkg/config/env"
	pkgserver "github.com/DjordjeVuckovic/fxbench/pkg/server"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func main() {
	cli := parseFlags()

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	runID := uuid.NewString()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})).With("run_id", runID)
	slog.SetDefault(logger)

	if err := app.CheckShape(cli.Args); err != nil {
		slog.Error("Invalid invocation", "error", err)
		flag.Usage()
		os.Exit(1)
	}

	if err := env.LoadDotEnv(cli.EnvFile, cli.envFileSet); err != nil {
		slog.Error("Failed to load .env", "path", cli.EnvFile, "error", err)
		os.Exit(1)
	}

	cfg, err := loadConfig(cli.ConfigPath, cli.configSet)
	if err != nil {
		slog.Error("Failed to load config", "path", cli.ConfigPath, "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := app.New(cfg, engine.DefaultTable(), toolchain.NewShell(cli.Verbose), runID, os.Stdout)
	a.StatusJSON = cli.StatusJSON
	a.Serve = serve

	if err := a.Dispatch(ctx, cli.Args); err != nil {
		var ue *apperr.UsageError
		if errors.As(err, &ue) {
			slog.Error("Invalid invocation", "error", err)
			flag.Usage()
			os.Exit(1)
		}
		slog.Error("Command failed", "args", cli.Args, "error", err)
		os.Exit(1)
	}
}

// loadConfig falls back to defaults plus environment when the default
// config file is absent. A path passed with -config must exist.
func loadConfig(path string, explicit bool) (config.Config, error) {
	cfg, err := config.LoadFromFile(path, env.Lookup)
	if err == nil {
		return cfg, nil
	}
	if explicit {
		return config.Config{}, err
	}
	if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) {
		slog.Info("Config file not found, using defaults", "path", path)
		return config.Parse(nil, env.Lookup)
	}
	return config.Config{}, err
}

func serve(ctx context.Context, a *app.App) error {
	sCfg, err := server.LoadConfig()
	if err != nil {
		return err
	}

	s := server.NewServer(echo.New(), sCfg, pkgserver.NewDirHealthChecker(a.Config.OutDir))
	router.NewBenchRouter(s.Echo, a.Table, a).Bind()

	return s.Start(ctx)
}
