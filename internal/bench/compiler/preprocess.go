package compiler

import (
	"bufio"
	"strings"
)

// stripDirectives drops the line markers and leftover directives the C
// preprocessor leaves in its output, which the wat parser rejects.
func stripDirectives(src string) string {
	var b strings.Builder
	sc := bufio.NewScanner(strings.NewReader(src))
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}
