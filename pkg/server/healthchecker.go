package server

import (
	"context"
	"os"
)

type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

// DirHealthChecker reports healthy while the artifact directory is readable.
type DirHealthChecker struct {
	dir string
}

func NewDirHealthChecker(dir string) *DirHealthChecker {
	return &DirHealthChecker{dir: dir}
}

func (hc *DirHealthChecker) Healthy(ctx context.Context) bool {
	if ctx.Err() != nil {
		return false
	}
	info, err := os.Stat(hc.dir)
	return err == nil && info.IsDir()
}
