package toolchain

import (
	"context"
	"os"
	"path/filepath"
	"sync"
)

// Recorder is an Invoker that executes nothing. It keeps every call for
// inspection and can fake outputs for steps that depend on earlier ones.
type Recorder struct {
	// Stdout is returned for calls whose tool name matches the key.
	Stdout map[string]string
	// ExitCodes is returned for calls whose tool name matches the key.
	ExitCodes map[string]int
	// Touch creates the file named by a "-o" argument on every zero-exit call.
	Touch bool

	mu    sync.Mutex
	calls []Result
}

func NewRecorder() *Recorder {
	return &Recorder{
		Stdout:    make(map[string]string),
		ExitCodes: make(map[string]int),
		Touch:     true,
	}
}

func (r *Recorder) Run(ctx context.Context, name string, args ...string) (Result, error) {
	res := Result{
		Command:  append([]string{name}, args...),
		ExitCode: r.ExitCodes[name],
		Stdout:   r.Stdout[name],
	}
	if err := ctx.Err(); err != nil {
		return res, err
	}

	r.mu.Lock()
	r.calls = append(r.calls, res)
	r.mu.Unlock()

	if r.Touch && res.ExitCode == 0 {
		if out := outputArg(args); out != "" {
			if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
				return res, err
			}
			if err := os.WriteFile(out, []byte(name), 0o644); err != nil {
				return res, err
			}
		}
	}
	return res, nil
}

func (r *Recorder) Calls() []Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Result, len(r.calls))
	copy(out, r.calls)
	return out
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	r.calls = nil
	r.mu.Unlock()
}

func outputArg(args []string) string {
	for i := 0; i+1 < len(args); i++ {
		if args[i] == "-o" {
			return args[i+1]
		}
	}
	return ""
}
