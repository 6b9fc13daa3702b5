package engine

import (
	"fmt"
	"slices"
)

type Mode string

const (
	ModeAsyncify Mode = "asyncify"
	ModeWasmFX   Mode = "wasmfx"
)

func (m Mode) Valid() bool {
	return m == ModeAsyncify || m == ModeWasmFX
}

// Entry is one runnable (engine, mode) pair and the command line template
// that runs it.
type Entry struct {
	Engine   string `json:"engine"`
	Mode     Mode   `json:"mode"`
	Template string `json:"template"`
}

// Table is an ordered, immutable set of entries.
type Table struct {
	entries []Entry
}

func NewTable(entries ...Entry) (Table, error) {
	if len(entries) == 0 {
		return Table{}, fmt.Errorf("engine table is empty")
	}
	seen := make(map[string]bool, len(entries))
	for i, e := range entries {
		if e.Engine == "" {
			return Table{}, fmt.Errorf("entry at index %d has no engine", i)
		}
		if !e.Mode.Valid() {
			return Table{}, fmt.Errorf("engine %q has invalid mode %q", e.Engine, e.Mode)
		}
		if e.Template == "" {
			return Table{}, fmt.Errorf("engine %q mode %q has no template", e.Engine, e.Mode)
		}
		key := e.Engine + "/" + string(e.Mode)
		if seen[key] {
			return Table{}, fmt.Errorf("engine %q mode %q registered twice", e.Engine, e.Mode)
		}
		seen[key] = true
	}
	return Table{entries: slices.Clone(entries)}, nil
}

func (t Table) Entries() []Entry {
	return slices.Clone(t.entries)
}

func (t Table) Len() int {
	return len(t.entries)
}

// Engines lists engine names in first-seen order.
func (t Table) Engines() []string {
	var names []string
	for _, e := range t.entries {
		if !slices.Contains(names, e.Engine) {
			names = append(names, e.Engine)
		}
	}
	return names
}

func (t Table) Modes(engine string) []Mode {
	var modes []Mode
	for _, e := range t.entries {
		if e.Engine == engine {
			modes = append(modes, e.Mode)
		}
	}
	return modes
}

func (t Table) Lookup(engine string, mode Mode) (Entry, bool) {
	for _, e := range t.entries {
		if e.Engine == engine && e.Mode == mode {
			return e, true
		}
	}
	return Entry{}, false
}
