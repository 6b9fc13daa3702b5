package server

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirHealthChecker(t *testing.T) {
	dir := t.TempDir()
	assert.True(t, NewDirHealthChecker(dir).Healthy(context.Background()))
	assert.False(t, NewDirHealthChecker(filepath.Join(dir, "missing")).Healthy(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, NewDirHealthChecker(dir).Healthy(ctx))
}
