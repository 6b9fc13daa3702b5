package config

import "fmt"

func (c Config) EnginePath(engine string) (string, error) {
	switch engine {
	case "wasmtime":
		return c.Wasmtime, nil
	case "d8":
		return c.D8, nil
	case "wizard":
		return c.Wizard, nil
	default:
		return "", fmt.Errorf("no path configured for engine %q", engine)
	}
}

// FamilyArg returns the trailing run argument configured for a benchmark
// family, or "" when the family has none.
func (c Config) FamilyArg(family string) string {
	return c.BenchArgs[family]
}
