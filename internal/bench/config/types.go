package config

// Config is the flat build and run configuration. It is loaded once at
// startup and handed to each component by value.
type Config struct {
	WasiCC     string `yaml:"WASICC"`
	Asyncify   string `yaml:"ASYNCIFY"`
	WasmInterp string `yaml:"WASM_INTERP"`
	WasmMerge  string `yaml:"WASM_MERGE"`

	Wasmtime string `yaml:"WASMTIME"`
	D8       string `yaml:"D8"`
	Wizard   string `yaml:"WIZARD"`

	StackPoolSize                  int  `yaml:"STACK_POOL_SIZE"`
	AsyncifyDefaultStackSize       int  `yaml:"ASYNCIFY_DEFAULT_STACK_SIZE"`
	WasmfxContTableInitialCapacity int  `yaml:"WASMFX_CONT_TABLE_INITIAL_CAPACITY"`
	WasmfxContShadowStackSize      int  `yaml:"WASMFX_CONT_SHADOW_STACK_SIZE"`
	WasmfxContShadowStack          bool `yaml:"WASMFX_CONT_SHADOW_STACK"`

	CFlags []string `yaml:"CFLAGS"`

	Prefix     string `yaml:"PREFIX"`
	ArchPrefix string `yaml:"ARCH_PREFIX"`
	JSLoader   string `yaml:"V8_JS_LOADER"`

	SrcDir      string `yaml:"SRC_DIR"`
	IncDir      string `yaml:"INC_DIR"`
	ExamplesDir string `yaml:"EXAMPLES_DIR"`
	OutDir      string `yaml:"OUT_DIR"`

	// BenchArgs maps a benchmark family to the trailing argument of its run scripts.
	BenchArgs map[string]string `yaml:"BENCH_ARGS"`
}

const (
	DefaultWasiCC     = "clang"
	DefaultAsyncify   = "wasm-opt"
	DefaultWasmInterp = "wasm"
	DefaultWasmMerge  = "wasm-merge"

	DefaultWasmtime = "../wasmtime/target/release/wasmtime"
	DefaultD8       = "../v8/v8/out/x64.release/d8"
	DefaultWizard   = "../wizard-engine/bin/wizeng.x86-64-linux"

	DefaultStackPoolSize                  = 0
	DefaultAsyncifyDefaultStackSize       = 2097152
	DefaultWasmfxContTableInitialCapacity = 1024
	DefaultWasmfxContShadowStackSize      = 65536

	DefaultPrefix   = "#!/usr/bin/env bash"
	DefaultJSLoader = "load.mjs"
)

func Default() Config {
	return Config{
		WasiCC:                         DefaultWasiCC,
		Asyncify:                       DefaultAsyncify,
		WasmInterp:                     DefaultWasmInterp,
		WasmMerge:                      DefaultWasmMerge,
		Wasmtime:                       DefaultWasmtime,
		D8:                             DefaultD8,
		Wizard:                         DefaultWizard,
		StackPoolSize:                  DefaultStackPoolSize,
		AsyncifyDefaultStackSize:       DefaultAsyncifyDefaultStackSize,
		WasmfxContTableInitialCapacity: DefaultWasmfxContTableInitialCapacity,
		WasmfxContShadowStackSize:      DefaultWasmfxContShadowStackSize,
		CFlags:                         []string{"-O2"},
		Prefix:                         DefaultPrefix,
		JSLoader:                       DefaultJSLoader,
		SrcDir:                         "src",
		IncDir:                         "inc",
		ExamplesDir:                    "examples",
		OutDir:                         ".",
		BenchArgs: map[string]string{
			"itersum": "1 10000000",
			"treesum": "1 20",
			"sieve":   "1 10000",
		},
	}
}
