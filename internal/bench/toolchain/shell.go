package toolchain

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/magefile/mage/sh"
)

// Shell runs commands on the host through mage's sh package. Like sh.Exec,
// it expands $VAR in the command and every argument, looking in Env first
// and then the process environment; Result.Command holds the expanded argv.
type Shell struct {
	// Env is added to the process environment of every command.
	Env map[string]string
	// Verbose copies command stderr to the process stderr as it is produced.
	Verbose bool
}

func NewShell(verbose bool) *Shell {
	return &Shell{Verbose: verbose}
}

func (s *Shell) Run(ctx context.Context, name string, args ...string) (Result, error) {
	res := Result{Command: s.expand(append([]string{name}, args...))}
	if err := ctx.Err(); err != nil {
		return res, err
	}

	var stdout, stderr bytes.Buffer
	var outW, errW io.Writer = &stdout, &stderr
	if s.Verbose {
		errW = io.MultiWriter(&stderr, os.Stderr)
	}

	start := time.Now()
	ran, err := sh.Exec(s.Env, outW, errW, name, args...)
	res.Stdout = stdout.String()
	res.Stderr = stderr.String()

	if !ran {
		return res, err
	}
	res.ExitCode = sh.ExitStatus(err)

	slog.Debug("tool finished", "cmd", res.String(), "exit", res.ExitCode, "elapsed", time.Since(start))
	return res, nil
}

func (s *Shell) expand(argv []string) []string {
	lookup := func(key string) string {
		if v, ok := s.Env[key]; ok {
			return v
		}
		return os.Getenv(key)
	}
	out := make([]string, len(argv))
	for i, a := range argv {
		out[i] = os.Expand(a, lookup)
	}
	return out
}
