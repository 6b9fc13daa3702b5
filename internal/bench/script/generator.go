package script

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/DjordjeVuckovic/fxbench/internal/bench/compiler"
	"github.com/DjordjeVuckovic/fxbench/internal/bench/config"
	"github.com/DjordjeVuckovic/fxbench/internal/bench/engine"
	"github.com/DjordjeVuckovic/fxbench/internal/bench/registry"
)

type Generator struct {
	cfg   config.Config
	table engine.Table
}

func NewGenerator(cfg config.Config, table engine.Table) *Generator {
	return &Generator{cfg: cfg, table: table}
}

// Generate writes one executable script per table entry and returns their
// paths in table order. Scripts written before a failure are left in place.
// The bundled d8 loader is staged alongside them when needed.
func (g *Generator) Generate(benchmark string) ([]string, error) {
	if err := registry.Validate(benchmark); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(g.cfg.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	if err := g.stageLoader(); err != nil {
		return nil, err
	}

	var written []string
	for _, e := range g.table.Entries() {
		content, err := g.Render(benchmark, e)
		if err != nil {
			return written, fmt.Errorf("render %s/%s: %w", e.Engine, e.Mode, err)
		}

		path := filepath.Join(g.cfg.OutDir, engine.ScriptName(benchmark, e.Engine, e.Mode))
		if err := writeExecutable(path, content); err != nil {
			return written, err
		}
		written = append(written, path)
	}

	slog.Info("Generated scripts", "benchmark", benchmark, "count", len(written))
	return written, nil
}

func (g *Generator) Render(benchmark string, e engine.Entry) (string, error) {
	tool, err := g.cfg.EnginePath(e.Engine)
	if err != nil {
		return "", err
	}

	arch := ""
	if g.cfg.ArchPrefix != "" {
		arch = g.cfg.ArchPrefix + " "
	}

	out, err := Render(e.Template, Params{
		"prefix":    g.cfg.Prefix,
		"arch":      arch,
		"tool":      tool,
		"benchmark": benchmark,
		"imports":   compiler.VariantFor(benchmark).ImportBinary(),
		"loader":    g.cfg.JSLoader,
		"arg":       g.cfg.FamilyArg(registry.Family(benchmark)),
	})
	if err != nil {
		return "", err
	}
	return tidy(out), nil
}

func writeExecutable(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
		return fmt.Errorf("write script: %w", err)
	}
	// WriteFile keeps the mode of an existing file.
	if err := os.Chmod(path, 0o755); err != nil {
		return fmt.Errorf("mark executable: %w", err)
	}
	return nil
}
