package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/DjordjeVuckovic/fxbench/internal/bench/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollect(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sieve_asyncify.wasm"), make([]byte, 2048), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sieve_d8_asyncify.sh"), []byte("#!/bin/sh\n"), 0o755))

	r := Collect(dir, []string{"sieve", "hello"}, engine.DefaultTable(), "run-1")

	assert.Equal(t, "run-1", r.RunID)
	require.Len(t, r.Benchmarks, 2)

	sieve, ok := r.Find("sieve")
	require.True(t, ok)
	present, total := sieve.Built()
	assert.Equal(t, 2, present)
	assert.Equal(t, 8, total)

	assert.Equal(t, "sieve_asyncify.wasm", sieve.Artifacts[0].Name)
	assert.Equal(t, KindBinary, sieve.Artifacts[0].Kind)
	assert.True(t, sieve.Artifacts[0].Present)
	assert.Equal(t, int64(2048), sieve.Artifacts[0].Size)
	assert.False(t, sieve.Artifacts[1].Present)

	hello, ok := r.Find("hello")
	require.True(t, ok)
	present, _ = hello.Built()
	assert.Zero(t, present)

	_, ok = r.Find("treesum")
	assert.False(t, ok)
}

func TestWriteTable(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "treesum_wasmfx.wasm"), make([]byte, 1500), 0o755))

	r := Collect(dir, []string{"treesum"}, engine.DefaultTable(), "run-2")

	var buf bytes.Buffer
	WriteTable(r, &buf)
	out := buf.String()

	assert.Contains(t, out, "--- treesum: 1/8 artifacts ---")
	assert.Contains(t, out, "1.5 kB")
	assert.Contains(t, out, "treesum_wizard_wasmfx.sh")
	assert.Contains(t, out, "missing")
}

func TestWriteJSON(t *testing.T) {
	dir := t.TempDir()
	r := Collect(dir, []string{"hello_switch"}, engine.DefaultTable(), "run-3")

	path := filepath.Join(dir, "status.json")
	require.NoError(t, WriteJSON(r, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "run-3", decoded.RunID)
	require.Len(t, decoded.Benchmarks, 1)
	assert.Len(t, decoded.Benchmarks[0].Artifacts, 8)
}
