package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/fxbench/internal/bench/registry"
	"gopkg.in/yaml.v3"
)

// LookupFunc has the shape of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

func LoadFromFile(path string, lookup LookupFunc) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}
	return Parse(data, lookup)
}

// Parse decodes YAML over the defaults, applies environment overrides and
// validates the result. A nil lookup skips the environment.
func Parse(data []byte, lookup LookupFunc) (Config, error) {
	cfg := Default()
	defaultArgs := cfg.BenchArgs
	cfg.BenchArgs = nil

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config YAML: %w", err)
	}
	if cfg.BenchArgs == nil {
		cfg.BenchArgs = defaultArgs
	}

	if lookup != nil {
		if err := cfg.ApplyEnv(lookup); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

const benchArgsEnvPrefix = "BENCH_ARGS_"

// ApplyEnv overrides fields with environment variables named after their
// YAML keys. BENCH_ARGS_<FAMILY> overrides a single family argument.
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	strs := map[string]*string{
		"WASICC":       &c.WasiCC,
		"ASYNCIFY":     &c.Asyncify,
		"WASM_INTERP":  &c.WasmInterp,
		"WASM_MERGE":   &c.WasmMerge,
		"WASMTIME":     &c.Wasmtime,
		"D8":           &c.D8,
		"WIZARD":       &c.Wizard,
		"PREFIX":       &c.Prefix,
		"ARCH_PREFIX":  &c.ArchPrefix,
		"V8_JS_LOADER": &c.JSLoader,
		"SRC_DIR":      &c.SrcDir,
		"INC_DIR":      &c.IncDir,
		"EXAMPLES_DIR": &c.ExamplesDir,
		"OUT_DIR":      &c.OutDir,
	}
	for key, dst := range strs {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}

	ints := map[string]*int{
		"STACK_POOL_SIZE":                    &c.StackPoolSize,
		"ASYNCIFY_DEFAULT_STACK_SIZE":        &c.AsyncifyDefaultStackSize,
		"WASMFX_CONT_TABLE_INITIAL_CAPACITY": &c.WasmfxContTableInitialCapacity,
		"WASMFX_CONT_SHADOW_STACK_SIZE":      &c.WasmfxContShadowStackSize,
	}
	for key, dst := range ints {
		v, ok := lookup(key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", key, v, err)
		}
		*dst = n
	}

	if v, ok := lookup("WASMFX_CONT_SHADOW_STACK"); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid WASMFX_CONT_SHADOW_STACK %q: %w", v, err)
		}
		c.WasmfxContShadowStack = b
	}

	if v, ok := lookup("CFLAGS"); ok {
		c.CFlags = strings.Fields(v)
	}

	args := maps.Clone(c.BenchArgs)
	if args == nil {
		args = make(map[string]string)
	}
	for _, family := range registry.Families() {
		if v, ok := lookup(benchArgsEnvPrefix + strings.ToUpper(family)); ok {
			args[family] = v
		}
	}
	c.BenchArgs = args

	return nil
}

func (c *Config) Validate() error {
	tools := []struct {
		key, val string
	}{
		{"WASICC", c.WasiCC},
		{"ASYNCIFY", c.Asyncify},
		{"WASM_INTERP", c.WasmInterp},
		{"WASM_MERGE", c.WasmMerge},
		{"WASMTIME", c.Wasmtime},
		{"D8", c.D8},
		{"WIZARD", c.Wizard},
	}
	for _, t := range tools {
		if strings.TrimSpace(t.val) == "" {
			return fmt.Errorf("%s is empty", t.key)
		}
	}

	nums := []struct {
		key string
		val int
	}{
		{"STACK_POOL_SIZE", c.StackPoolSize},
		{"ASYNCIFY_DEFAULT_STACK_SIZE", c.AsyncifyDefaultStackSize},
		{"WASMFX_CONT_TABLE_INITIAL_CAPACITY", c.WasmfxContTableInitialCapacity},
		{"WASMFX_CONT_SHADOW_STACK_SIZE", c.WasmfxContShadowStackSize},
	}
	for _, n := range nums {
		if n.val < 0 {
			return fmt.Errorf("%s must be non-negative, got %d", n.key, n.val)
		}
	}

	// Values below reach toolchain.Shell, which expands $VAR in every argument.
	shellArgs := []struct {
		key, val string
	}{
		{"WASICC", c.WasiCC},
		{"ASYNCIFY", c.Asyncify},
		{"WASM_INTERP", c.WasmInterp},
		{"WASM_MERGE", c.WasmMerge},
		{"SRC_DIR", c.SrcDir},
		{"INC_DIR", c.IncDir},
		{"EXAMPLES_DIR", c.ExamplesDir},
		{"OUT_DIR", c.OutDir},
	}
	for _, f := range c.CFlags {
		shellArgs = append(shellArgs, struct{ key, val string }{"CFLAGS", f})
	}
	for _, a := range shellArgs {
		if strings.Contains(a.val, "$") {
			return fmt.Errorf("%s must not contain '$', got %q", a.key, a.val)
		}
	}

	if !strings.HasPrefix(c.Prefix, "#!") {
		return fmt.Errorf("PREFIX must start with #!, got %q", c.Prefix)
	}
	if c.OutDir == "" {
		c.OutDir = "."
	}
	return nil
}
