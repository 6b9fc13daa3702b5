package engine

const (
	wasmtimeFlags = "-W=exceptions,function-references,gc,stack-switching"
	d8Flags       = "--experimental-wasm-wasmfx"
	wizardFlags   = "--ext:stack-switching"
)

var defaultEntries = []Entry{
	{
		Engine:   "wasmtime",
		Mode:     ModeAsyncify,
		Template: "{{prefix}}\n{{arch}}{{tool}} run --preload={{imports}} " + wasmtimeFlags + " {{benchmark}}_asyncify.wasm {{arg}}\n",
	},
	{
		Engine:   "wasmtime",
		Mode:     ModeWasmFX,
		Template: "{{prefix}}\n{{arch}}{{tool}} run --preload={{imports}} " + wasmtimeFlags + " {{benchmark}}_wasmfx.wasm {{arg}}\n",
	},
	{
		Engine:   "d8",
		Mode:     ModeAsyncify,
		Template: "{{prefix}}\n{{arch}}{{tool}} " + d8Flags + " {{loader}} -- {{benchmark}}_asyncify.wasm {{arg}}\n",
	},
	{
		Engine:   "d8",
		Mode:     ModeWasmFX,
		Template: "{{prefix}}\n{{arch}}{{tool}} " + d8Flags + " {{loader}} -- {{benchmark}}_wasmfx.wasm {{arg}}\n",
	},
	{
		Engine:   "wizard",
		Mode:     ModeAsyncify,
		Template: "{{prefix}}\n{{arch}}{{tool}} " + wizardFlags + " {{benchmark}}_asyncify.wasm {{arg}}\n",
	},
	{
		Engine:   "wizard",
		Mode:     ModeWasmFX,
		Template: "{{prefix}}\n{{arch}}{{tool}} " + wizardFlags + " {{benchmark}}_wasmfx.wasm {{arg}}\n",
	},
}

// DefaultTable returns the wasmtime, d8 and wizard table with both modes
// for each engine.
func DefaultTable() Table {
	t, err := NewTable(defaultEntries...)
	if err != nil {
		panic(err)
	}
	return t
}

// Artifact is the binary a script of the given mode runs.
func Artifact(benchmark string, mode Mode) string {
	return benchmark + "_" + string(mode) + ".wasm"
}

// ScriptName follows <benchmark>_<engine>_<mode>.sh.
func ScriptName(benchmark, engine string, mode Mode) string {
	return benchmark + "_" + engine + "_" + string(mode) + ".sh"
}
