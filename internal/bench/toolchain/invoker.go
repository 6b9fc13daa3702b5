package toolchain

import (
	"context"
	"fmt"
	"strings"
)

// Invoker runs an external command to completion and reports how it exited.
// A non-zero exit is reported through Result.ExitCode; err is reserved for
// commands that could not be started.
type Invoker interface {
	Run(ctx context.Context, name string, args ...string) (Result, error)
}

type Result struct {
	Command  []string
	ExitCode int
	Stdout   string
	Stderr   string
}

func (r Result) String() string {
	return strings.Join(r.Command, " ")
}

type ExitError struct {
	Command  string
	ExitCode int
	Stderr   string
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("%q exited with status %d", e.Command, e.ExitCode)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + lastLine(s)
	}
	return msg
}

// Check turns a Run outcome into a single error, failing on any non-zero exit.
func Check(res Result, err error) (Result, error) {
	if err != nil {
		return res, err
	}
	if res.ExitCode != 0 {
		return res, &ExitError{Command: res.String(), ExitCode: res.ExitCode, Stderr: res.Stderr}
	}
	return res, nil
}

func lastLine(s string) string {
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return s[i+1:]
	}
	return s
}
