package report

import (
	"os"
	"path/filepath"
	"time"

	"github.com/DjordjeVuckovic/fxbench/internal/bench/engine"
)

// Collect inspects outDir for the binaries and scripts each benchmark is
// expected to have.
func Collect(outDir string, benchmarks []string, table engine.Table, runID string) *Report {
	r := &Report{
		RunID:       runID,
		GeneratedAt: time.Now().UTC(),
		OutDir:      outDir,
	}

	for _, b := range benchmarks {
		bs := BenchmarkStatus{Benchmark: b}
		for _, m := range []engine.Mode{engine.ModeAsyncify, engine.ModeWasmFX} {
			bs.Artifacts = append(bs.Artifacts, stat(outDir, engine.Artifact(b, m), KindBinary, "", m))
		}
		for _, e := range table.Entries() {
			bs.Artifacts = append(bs.Artifacts, stat(outDir, engine.ScriptName(b, e.Engine, e.Mode), KindScript, e.Engine, e.Mode))
		}
		r.Benchmarks = append(r.Benchmarks, bs)
	}
	return r
}

func stat(dir, name string, kind ArtifactKind, eng string, mode engine.Mode) Artifact {
	a := Artifact{Name: name, Kind: kind, Engine: eng, Mode: string(mode)}
	info, err := os.Stat(filepath.Join(dir, name))
	if err != nil || info.IsDir() {
		return a
	}
	a.Present = true
	a.Size = info.Size()
	a.ModTime = info.ModTime().UTC()
	return a
}
