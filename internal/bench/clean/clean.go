package clean

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/DjordjeVuckovic/fxbench/internal/bench/compiler"
	"github.com/DjordjeVuckovic/fxbench/internal/bench/registry"
)

// Cleaner removes build artifacts from the output directory. Removal is
// best-effort: missing files are ignored and other failures are logged.
type Cleaner struct {
	outDir string
}

func NewCleaner(outDir string) *Cleaner {
	return &Cleaner{outDir: outDir}
}

// Clean removes the intermediates and import modules left behind by a
// compile of one benchmark. Final binaries and scripts stay.
func (c *Cleaner) Clean(benchmark string) ([]string, error) {
	if err := registry.Validate(benchmark); err != nil {
		return nil, err
	}

	v := compiler.VariantFor(benchmark)
	names := []string{
		benchmark + "_asyncify.pre.wasm",
		benchmark + "_wasmfx.pre.wasm",
		v.ImportText(),
		v.ImportBinary(),
	}

	var removed []string
	for _, name := range names {
		if c.remove(filepath.Join(c.outDir, name)) {
			removed = append(removed, name)
		}
	}
	slog.Info("Cleaned", "benchmark", benchmark, "removed", len(removed))
	return removed, nil
}

// CleanAll removes every generated script and binary for all registered
// benchmarks. Patterns match entry names only, so the output directory
// path may contain glob metacharacters.
func (c *Cleaner) CleanAll() []string {
	var patterns []string
	for _, b := range registry.All() {
		patterns = append(patterns, b+"_*.sh", b+"_*.wasm")
	}
	for _, v := range compiler.Variants() {
		patterns = append(patterns, v.ImportText(), v.ImportBinary())
	}

	entries, err := os.ReadDir(c.outDir)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("read output dir failed", "path", c.outDir, "error", err)
		}
		return nil
	}

	var removed []string
	for _, e := range entries {
		if e.IsDir() || !matchAny(patterns, e.Name()) {
			continue
		}
		if c.remove(filepath.Join(c.outDir, e.Name())) {
			removed = append(removed, e.Name())
		}
	}
	slog.Info("Cleaned all benchmarks", "removed", len(removed))
	return removed
}

func matchAny(patterns []string, name string) bool {
	for _, p := range patterns {
		if ok, _ := filepath.Match(p, name); ok {
			return true
		}
	}
	return false
}

func (c *Cleaner) remove(path string) bool {
	err := os.Remove(path)
	switch {
	case err == nil:
		slog.Debug("removed", "path", path)
		return true
	case errors.Is(err, fs.ErrNotExist):
		return false
	default:
		slog.Warn("remove failed", "path", path, "error", err)
		return false
	}
}
