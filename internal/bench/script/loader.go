package script

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/DjordjeVuckovic/fxbench/internal/bench/config"
)

// JSLoader is the WASI host the d8 scripts pass to d8 ahead of the module.
//
//go:embed load.mjs
var JSLoader []byte

// stageLoader writes the bundled loader to the output directory when the
// table references {{loader}}, V8_JS_LOADER is the default and no file is
// there yet. A custom loader path is the user's to provide.
func (g *Generator) stageLoader() error {
	if g.cfg.JSLoader != config.DefaultJSLoader || !g.usesLoader() {
		return nil
	}
	path := filepath.Join(g.cfg.OutDir, config.DefaultJSLoader)
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat loader: %w", err)
	}
	if err := os.WriteFile(path, JSLoader, 0o644); err != nil {
		return fmt.Errorf("write loader: %w", err)
	}
	slog.Debug("Staged d8 loader", "path", path)
	return nil
}

func (g *Generator) usesLoader() bool {
	for _, e := range g.table.Entries() {
		if slices.Contains(Placeholders(e.Template), "loader") {
			return true
		}
	}
	return false
}
