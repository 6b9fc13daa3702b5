package script

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

type Params map[string]any

var placeholderRegex = regexp.MustCompile(`\{\{(\w+)\}\}`)

// Render substitutes {{name}} placeholders. Every placeholder must have a
// value; values may be empty.
func Render(tmpl string, params Params) (string, error) {
	var missing []string
	seen := make(map[string]bool)

	result := placeholderRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		key := match[2 : len(match)-2]
		if val, ok := params[key]; ok {
			return formatValue(val)
		}
		if !seen[key] {
			seen[key] = true
			missing = append(missing, key)
		}
		return match
	})

	if len(missing) > 0 {
		return "", fmt.Errorf("template missing params: %v", missing)
	}
	return result, nil
}

// Placeholders lists the distinct placeholder names in order of appearance.
func Placeholders(tmpl string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, m := range placeholderRegex.FindAllStringSubmatch(tmpl, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}

func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case bool:
		return strconv.FormatBool(val)
	case []string:
		return strings.Join(val, " ")
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// tidy trims trailing blanks from every line so an empty trailing argument
// leaves no dangling space.
func tidy(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t")
	}
	out := strings.Join(lines, "\n")
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out
}
