package toolchain

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	t.Run("zero exit", func(t *testing.T) {
		res, err := Check(Result{Command: []string{"clang"}}, nil)
		require.NoError(t, err)
		assert.Equal(t, "clang", res.String())
	})

	t.Run("non-zero exit", func(t *testing.T) {
		_, err := Check(Result{
			Command:  []string{"wasm-merge", "a.wasm"},
			ExitCode: 2,
			Stderr:   "warning: x\nfatal: bad input\n",
		}, nil)

		var ee *ExitError
		require.True(t, errors.As(err, &ee))
		assert.Equal(t, 2, ee.ExitCode)
		assert.Equal(t, `"wasm-merge a.wasm" exited with status 2: fatal: bad input`, err.Error())
	})

	t.Run("start failure wins", func(t *testing.T) {
		startErr := errors.New("executable file not found")
		_, err := Check(Result{ExitCode: 1}, startErr)
		assert.ErrorIs(t, err, startErr)
	})
}

func TestRecorder(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "nested", "sieve_asyncify.pre.wasm")

	r := NewRecorder()
	r.Stdout["clang"] = "(module)"
	r.ExitCodes["wasm-merge"] = 1

	res, err := r.Run(context.Background(), "clang", "-E", "in.wat.pp")
	require.NoError(t, err)
	assert.Equal(t, "(module)", res.Stdout)

	_, err = r.Run(context.Background(), "clang", "a.c", "-o", out)
	require.NoError(t, err)
	assert.FileExists(t, out)

	res, err = r.Run(context.Background(), "wasm-merge", "-o", filepath.Join(dir, "merged.wasm"))
	require.NoError(t, err)
	assert.Equal(t, 1, res.ExitCode)
	assert.NoFileExists(t, filepath.Join(dir, "merged.wasm"))

	calls := r.Calls()
	require.Len(t, calls, 3)
	assert.Equal(t, []string{"clang", "a.c", "-o", out}, calls[1].Command)

	r.Reset()
	assert.Empty(t, r.Calls())
}

func TestRecorder_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRecorder()
	_, err := r.Run(ctx, "clang")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, r.Calls())
}

func TestShell_Run(t *testing.T) {
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("no /bin/sh")
	}
	s := NewShell(false)

	res, err := s.Run(context.Background(), "/bin/sh", "-c", "echo out; echo err >&2; exit 3")
	require.NoError(t, err)
	assert.Equal(t, 3, res.ExitCode)
	assert.Equal(t, "out\n", res.Stdout)
	assert.Equal(t, "err\n", res.Stderr)

	_, err = s.Run(context.Background(), filepath.Join(t.TempDir(), "no-such-tool"))
	assert.Error(t, err)
}

func TestShell_Run_ExpandsVariables(t *testing.T) {
	if _, err := os.Stat("/bin/echo"); err != nil {
		t.Skip("no /bin/echo")
	}
	t.Setenv("FXBENCH_TEST_DIR", "")
	s := &Shell{Env: map[string]string{"FXBENCH_TEST_NAME": "fib"}}

	res, err := s.Run(context.Background(), "/bin/echo", "-DNAME=$FXBENCH_TEST_NAME", "out$FXBENCH_TEST_DIR/x.wasm")
	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, "-DNAME=fib out/x.wasm\n", res.Stdout)
	assert.Equal(t, []string{"/bin/echo", "-DNAME=fib", "out/x.wasm"}, res.Command)
}
