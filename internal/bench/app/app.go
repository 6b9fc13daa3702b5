package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/DjordjeVuckovic/fxbench/internal/apperr"
	"github.com/DjordjeVuckovic/fxbench/internal/bench/clean"
	"github.com/DjordjeVuckovic/fxbench/internal/bench/compiler"
	"github.com/DjordjeVuckovic/fxbench/internal/bench/config"
	"github.com/DjordjeVuckovic/fxbench/internal/bench/engine"
	"github.com/DjordjeVuckovic/fxbench/internal/bench/registry"
	"github.com/DjordjeVuckovic/fxbench/internal/bench/report"
	"github.com/DjordjeVuckovic/fxbench/internal/bench/script"
	"github.com/DjordjeVuckovic/fxbench/internal/bench/toolchain"
)

const Usage = `usage: fxbench [flags] <compile|run|clean> <benchmark>
       fxbench [flags] <make-all|clean-all|status|serve>`

// ServeFunc starts the HTTP artifact view and blocks until shutdown.
type ServeFunc func(ctx context.Context, a *App) error

type App struct {
	Config    config.Config
	Table     engine.Table
	Compiler  *compiler.Driver
	Generator *script.Generator
	Cleaner   *clean.Cleaner
	RunID     string

	// Out receives the status table.
	Out io.Writer
	// StatusJSON, when set, also writes the status report there.
	StatusJSON string
	Serve      ServeFunc
}

func New(cfg config.Config, table engine.Table, invoker toolchain.Invoker, runID string, out io.Writer) *App {
	return &App{
		Config:    cfg,
		Table:     table,
		Compiler:  compiler.NewDriver(cfg, invoker),
		Generator: script.NewGenerator(cfg, table),
		Cleaner:   clean.NewCleaner(cfg.OutDir),
		RunID:     runID,
		Out:       out,
	}
}

// CheckShape reports an *apperr.UsageError when args do not name a known
// action with the right number of arguments. It touches nothing else, so
// callers can run it before loading configuration.
func CheckShape(args []string) error {
	if len(args) == 0 {
		return apperr.NewUsage("missing action")
	}

	action, rest := args[0], args[1:]
	switch action {
	case "compile", "run", "clean":
		if len(rest) != 1 {
			return apperr.NewUsage(fmt.Sprintf("%s takes exactly one benchmark", action))
		}
	case "make-all", "clean-all", "status", "serve":
		if len(rest) != 0 {
			return apperr.NewUsage(fmt.Sprintf("%s takes no arguments", action))
		}
	default:
		return apperr.NewUsage(fmt.Sprintf("unknown action %q", action))
	}
	return nil
}

// Dispatch routes positional arguments to an action. Shape errors are
// *apperr.UsageError, unknown benchmarks *apperr.ValidationError.
func (a *App) Dispatch(ctx context.Context, args []string) error {
	if err := CheckShape(args); err != nil {
		return err
	}

	action := args[0]
	if len(args) == 2 {
		benchmark := args[1]
		if err := registry.Validate(benchmark); err != nil {
			return err
		}
		return a.single(ctx, action, benchmark)
	}
	return a.global(ctx, action)
}

func (a *App) single(ctx context.Context, action, benchmark string) error {
	switch action {
	case "compile":
		return a.Compiler.Compile(ctx, benchmark)
	case "run":
		_, err := a.Generator.Generate(benchmark)
		return err
	default:
		_, err := a.Cleaner.Clean(benchmark)
		return err
	}
}

func (a *App) global(ctx context.Context, action string) error {
	switch action {
	case "make-all":
		return a.MakeAll(ctx)
	case "clean-all":
		a.Cleaner.CleanAll()
		return nil
	case "status":
		return a.Status()
	default:
		if a.Serve == nil {
			return fmt.Errorf("serve is not configured")
		}
		return a.Serve(ctx, a)
	}
}

// MakeAll compiles and generates scripts for every registered benchmark,
// stopping at the first failure.
func (a *App) MakeAll(ctx context.Context) error {
	for _, b := range registry.All() {
		if err := a.Compiler.Compile(ctx, b); err != nil {
			return fmt.Errorf("make-all: %w", err)
		}
		if _, err := a.Generator.Generate(b); err != nil {
			return fmt.Errorf("make-all: %w", err)
		}
	}
	slog.Info("Built all benchmarks", "count", len(registry.All()))
	return nil
}

func (a *App) Report(benchmarks []string) *report.Report {
	return report.Collect(a.Config.OutDir, benchmarks, a.Table, a.RunID)
}

func (a *App) Status() error {
	r := a.Report(registry.All())
	if a.Out != nil {
		report.WriteTable(r, a.Out)
	}
	if a.StatusJSON != "" {
		if err := report.WriteJSON(r, a.StatusJSON); err != nil {
			return err
		}
		slog.Info("Status written", "path", a.StatusJSON)
	}
	return nil
}
