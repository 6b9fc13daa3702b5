package compiler

import "github.com/DjordjeVuckovic/fxbench/internal/bench/registry"

// Variant names the support sources and import module a benchmark builds
// against. Switch benchmarks use the fiber_switch runtime.
type Variant struct {
	AsyncifySupport string
	WasmFXSupport   string
	ImportTemplate  string
	ImportModule    string
}

var (
	defaultVariant = Variant{
		AsyncifySupport: "fiber_asyncify.c",
		WasmFXSupport:   "fiber_wasmfx.c",
		ImportTemplate:  "fiber_wasmfx_imports.wat.pp",
		ImportModule:    "fiber_wasmfx_imports",
	}
	switchVariant = Variant{
		AsyncifySupport: "fiber_switch_asyncify.c",
		WasmFXSupport:   "fiber_switch_wasmfx.c",
		ImportTemplate:  "fiber_switch_wasmfx_imports.wat.pp",
		ImportModule:    "fiber_switch_wasmfx_imports",
	}
)

func VariantFor(benchmark string) Variant {
	if registry.IsSwitch(benchmark) {
		return switchVariant
	}
	return defaultVariant
}

// Variants returns both variants, default first.
func Variants() []Variant {
	return []Variant{defaultVariant, switchVariant}
}

func (v Variant) ImportText() string {
	return v.ImportModule + ".wat"
}

func (v Variant) ImportBinary() string {
	return v.ImportModule + ".wasm"
}
