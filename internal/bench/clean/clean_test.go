package clean

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/DjordjeVuckovic/fxbench/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte("x"), 0o644))
	}
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func TestCleaner_Clean(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir,
		"sieve_asyncify.pre.wasm",
		"sieve_wasmfx.pre.wasm",
		"fiber_wasmfx_imports.wat",
		"fiber_wasmfx_imports.wasm",
		"fiber_switch_wasmfx_imports.wasm",
		"sieve_asyncify.wasm",
		"sieve_d8_asyncify.sh",
	)

	removed, err := NewCleaner(dir).Clean("sieve")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"sieve_asyncify.pre.wasm",
		"sieve_wasmfx.pre.wasm",
		"fiber_wasmfx_imports.wat",
		"fiber_wasmfx_imports.wasm",
	}, removed)

	assert.Equal(t, []string{
		"fiber_switch_wasmfx_imports.wasm",
		"sieve_asyncify.wasm",
		"sieve_d8_asyncify.sh",
	}, listDir(t, dir))
}

func TestCleaner_Clean_SwitchImports(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "fiber_wasmfx_imports.wasm", "fiber_switch_wasmfx_imports.wasm")

	removed, err := NewCleaner(dir).Clean("sieve_switch")
	require.NoError(t, err)
	assert.Equal(t, []string{"fiber_switch_wasmfx_imports.wasm"}, removed)
	assert.Equal(t, []string{"fiber_wasmfx_imports.wasm"}, listDir(t, dir))
}

func TestCleaner_Clean_MissingFilesAreFine(t *testing.T) {
	removed, err := NewCleaner(t.TempDir()).Clean("treesum")
	require.NoError(t, err)
	assert.Empty(t, removed)
}

func TestCleaner_Clean_UnknownBenchmark(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "fib_asyncify.pre.wasm")

	_, err := NewCleaner(dir).Clean("fib")

	var ve *apperr.ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{"fib_asyncify.pre.wasm"}, listDir(t, dir))
}

func TestCleaner_CleanAll(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir,
		"sieve_asyncify.wasm",
		"sieve_wasmfx.wasm",
		"sieve_wasmtime_asyncify.sh",
		"hello_switch_d8_wasmfx.sh",
		"treesum_wasmfx.pre.wasm",
		"fiber_wasmfx_imports.wat",
		"fiber_switch_wasmfx_imports.wasm",
		"load.mjs",
		"notes.sh",
		"fib_asyncify.wasm",
	)

	removed := NewCleaner(dir).CleanAll()
	assert.Len(t, removed, 7)
	assert.Equal(t, []string{"fib_asyncify.wasm", "load.mjs", "notes.sh"}, listDir(t, dir))

	assert.Empty(t, NewCleaner(dir).CleanAll())
}

func TestCleaner_CleanAll_MetacharactersInOutDir(t *testing.T) {
	for _, name := range []string{"out[1]", "out*", "out?"} {
		t.Run(name, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), name)
			require.NoError(t, os.Mkdir(dir, 0o755))
			touch(t, dir, "sieve_wasmfx.wasm", "sieve_d8_wasmfx.sh", "fiber_wasmfx_imports.wat", "load.mjs")

			removed := NewCleaner(dir).CleanAll()
			assert.ElementsMatch(t, []string{"fiber_wasmfx_imports.wat", "sieve_d8_wasmfx.sh", "sieve_wasmfx.wasm"}, removed)
			assert.Equal(t, []string{"load.mjs"}, listDir(t, dir))
		})
	}
}

func TestCleaner_CleanAll_MissingOutDir(t *testing.T) {
	assert.Empty(t, NewCleaner(filepath.Join(t.TempDir(), "missing")).CleanAll())
}
