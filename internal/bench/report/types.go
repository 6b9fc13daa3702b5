package report

import "time"

type ArtifactKind string

const (
	KindBinary ArtifactKind = "binary"
	KindScript ArtifactKind = "script"
)

type Report struct {
	RunID       string            `json:"run_id"`
	GeneratedAt time.Time         `json:"generated_at"`
	OutDir      string            `json:"out_dir"`
	Benchmarks  []BenchmarkStatus `json:"benchmarks"`
}

type BenchmarkStatus struct {
	Benchmark string     `json:"benchmark"`
	Artifacts []Artifact `json:"artifacts"`
}

type Artifact struct {
	Name    string       `json:"name"`
	Kind    ArtifactKind `json:"kind"`
	Engine  string       `json:"engine,omitempty"`
	Mode    string       `json:"mode"`
	Present bool         `json:"present"`
	Size    int64        `json:"size,omitempty"`
	ModTime time.Time    `json:"mod_time,omitzero"`
}

// Built counts present artifacts out of all expected ones.
func (bs *BenchmarkStatus) Built() (present, total int) {
	for _, a := range bs.Artifacts {
		if a.Present {
			present++
		}
	}
	return present, len(bs.Artifacts)
}

func (r *Report) Find(benchmark string) (*BenchmarkStatus, bool) {
	for i := range r.Benchmarks {
		if r.Benchmarks[i].Benchmark == benchmark {
			return &r.Benchmarks[i], true
		}
	}
	return nil, false
}
