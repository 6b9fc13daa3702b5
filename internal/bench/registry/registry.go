// Package registry holds the fixed set of benchmark programs the harness
// knows how to build.
package registry

import (
	"fmt"
	"slices"
	"strings"

	"github.com/DjordjeVuckovic/fxbench/internal/apperr"
)

// SwitchSuffix marks benchmarks written against the symmetric fiber_switch
// primitive instead of yield/resume.
const SwitchSuffix = "_switch"

var families = []string{"hello", "itersum", "sieve", "treesum"}

var benchmarks = func() []string {
	all := make([]string, 0, 2*len(families))
	for _, f := range families {
		all = append(all, f, f+SwitchSuffix)
	}
	return all
}()

// All returns every registered benchmark in registry order.
func All() []string {
	return slices.Clone(benchmarks)
}

func Families() []string {
	return slices.Clone(families)
}

func Contains(name string) bool {
	return slices.Contains(benchmarks, name)
}

// Validate succeeds iff name is registered.
func Validate(name string) error {
	if Contains(name) {
		return nil
	}
	return apperr.NewValidationWrap("unrecognized benchmark",
		fmt.Errorf("%q is not one of %s", name, strings.Join(benchmarks, ", ")))
}

func IsSwitch(name string) bool {
	return strings.HasSuffix(name, SwitchSuffix)
}

// Family strips the switch suffix: Family("sieve_switch") == "sieve".
func Family(name string) string {
	return strings.TrimSuffix(name, SwitchSuffix)
}
