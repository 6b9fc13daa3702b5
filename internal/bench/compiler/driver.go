package compiler

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/DjordjeVuckovic/fxbench/internal/bench/config"
	"github.com/DjordjeVuckovic/fxbench/internal/bench/engine"
	"github.com/DjordjeVuckovic/fxbench/internal/bench/registry"
	"github.com/DjordjeVuckovic/fxbench/internal/bench/toolchain"
)

// Driver builds the asyncify and wasmfx binaries for a benchmark. Every step
// must exit with status 0 before the next one starts.
type Driver struct {
	cfg     config.Config
	invoker toolchain.Invoker
}

func NewDriver(cfg config.Config, invoker toolchain.Invoker) *Driver {
	return &Driver{cfg: cfg, invoker: invoker}
}

func (d *Driver) Compile(ctx context.Context, benchmark string) error {
	if err := registry.Validate(benchmark); err != nil {
		return err
	}
	if err := d.CompileAsyncify(ctx, benchmark); err != nil {
		return fmt.Errorf("asyncify %s: %w", benchmark, err)
	}
	if err := d.CompileWasmFX(ctx, benchmark); err != nil {
		return fmt.Errorf("wasmfx %s: %w", benchmark, err)
	}
	return nil
}

func (d *Driver) CompileAsyncify(ctx context.Context, benchmark string) error {
	v := VariantFor(benchmark)
	pre := d.out(benchmark + "_asyncify.pre.wasm")
	final := d.out(engine.Artifact(benchmark, engine.ModeAsyncify))
	if err := d.ensureOutDir(); err != nil {
		return err
	}

	args := d.cflags()
	args = append(args,
		define("STACK_POOL_SIZE", d.cfg.StackPoolSize),
		define("ASYNCIFY_DEFAULT_STACK_SIZE", d.cfg.AsyncifyDefaultStackSize),
		filepath.Join(d.cfg.SrcDir, v.AsyncifySupport),
		d.source(benchmark),
		"-o", pre,
	)
	if err := d.run(ctx, d.cfg.WasiCC, args...); err != nil {
		return err
	}

	if err := d.run(ctx, d.cfg.Asyncify,
		"--enable-exception-handling", "--asyncify", pre, "-o", final); err != nil {
		return err
	}

	if err := os.Chmod(final, 0o755); err != nil {
		return fmt.Errorf("mark executable: %w", err)
	}
	if err := os.Remove(pre); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove intermediate: %w", err)
	}

	slog.Info("Built", "benchmark", benchmark, "mode", engine.ModeAsyncify, "artifact", final)
	return nil
}

func (d *Driver) CompileWasmFX(ctx context.Context, benchmark string) error {
	v := VariantFor(benchmark)
	wat := d.out(v.ImportText())
	imports := d.out(v.ImportBinary())
	pre := d.out(benchmark + "_wasmfx.pre.wasm")
	final := d.out(engine.Artifact(benchmark, engine.ModeWasmFX))
	if err := d.ensureOutDir(); err != nil {
		return err
	}

	if err := d.renderImports(ctx, v, wat); err != nil {
		return err
	}

	if err := d.run(ctx, d.cfg.WasmInterp, "-d", "-i", wat, "-o", imports); err != nil {
		return err
	}

	args := d.cflags()
	args = append(args,
		define("STACK_POOL_SIZE", d.cfg.StackPoolSize),
		define("WASMFX_CONT_SHADOW_STACK_SIZE", d.cfg.WasmfxContShadowStackSize),
	)
	if d.cfg.WasmfxContShadowStack {
		args = append(args, "-DWASMFX_CONT_SHADOW_STACK")
	}
	args = append(args,
		"-Wl,--export-table,--export-memory,--export=__stack_pointer",
		filepath.Join(d.cfg.SrcDir, v.WasmFXSupport),
		d.source(benchmark),
		"-o", pre,
	)
	if err := d.run(ctx, d.cfg.WasiCC, args...); err != nil {
		return err
	}

	// The application module is renamed to "main"; its imports of the
	// import module name resolve against the merged import module.
	if err := d.run(ctx, d.cfg.WasmMerge,
		imports, v.ImportModule,
		pre, "main",
		"-o", final,
		"--enable-all",
	); err != nil {
		return err
	}

	slog.Info("Built", "benchmark", benchmark, "mode", engine.ModeWasmFX, "artifact", final)
	return nil
}

// renderImports expands the import-definition template with the
// continuation table and shadow stack parameters.
func (d *Driver) renderImports(ctx context.Context, v Variant, dst string) error {
	args := []string{
		"-E", "-P", "-x", "c",
		define("WASMFX_CONT_TABLE_INITIAL_CAPACITY", d.cfg.WasmfxContTableInitialCapacity),
		define("WASMFX_CONT_SHADOW_STACK_SIZE", d.cfg.WasmfxContShadowStackSize),
	}
	if d.cfg.WasmfxContShadowStack {
		args = append(args, "-DWASMFX_CONT_SHADOW_STACK")
	}
	args = append(args, filepath.Join(d.cfg.IncDir, v.ImportTemplate))

	res, err := toolchain.Check(d.invoker.Run(ctx, d.cfg.WasiCC, args...))
	if err != nil {
		return fmt.Errorf("preprocess %s: %w", v.ImportTemplate, err)
	}

	if err := os.WriteFile(dst, []byte(stripDirectives(res.Stdout)), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", dst, err)
	}
	return nil
}

func (d *Driver) run(ctx context.Context, name string, args ...string) error {
	slog.Debug("Running tool", "tool", name, "args", args)
	_, err := toolchain.Check(d.invoker.Run(ctx, name, args...))
	return err
}

func (d *Driver) ensureOutDir() error {
	if err := os.MkdirAll(d.cfg.OutDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	return nil
}

func (d *Driver) cflags() []string {
	args := make([]string, 0, len(d.cfg.CFlags)+8)
	args = append(args, d.cfg.CFlags...)
	return append(args, "-I"+d.cfg.IncDir)
}

func (d *Driver) source(benchmark string) string {
	return filepath.Join(d.cfg.ExamplesDir, benchmark+".c")
}

func (d *Driver) out(name string) string {
	return filepath.Join(d.cfg.OutDir, name)
}

func define(name string, v int) string {
	return "-D" + name + "=" + strconv.Itoa(v)
}
