package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
)

func WriteTable(r *Report, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Build Status (%s) ===\n", r.OutDir)

	for i := range r.Benchmarks {
		bs := &r.Benchmarks[i]
		present, total := bs.Built()
		fmt.Fprintf(tw, "\n--- %s: %d/%d artifacts ---\n\n", bs.Benchmark, present, total)
		writeArtifactTable(tw, bs)
	}

	tw.Flush()
}

func writeArtifactTable(tw *tabwriter.Writer, bs *BenchmarkStatus) {
	header := []string{"Artifact", "Kind", "Engine", "Mode", "Size", "Built"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	for _, a := range bs.Artifacts {
		size, built := "-", "missing"
		if a.Present {
			size = humanize.Bytes(uint64(a.Size))
			built = humanize.Time(a.ModTime)
		}
		eng := a.Engine
		if eng == "" {
			eng = "-"
		}
		row := []string{a.Name, string(a.Kind), eng, a.Mode, size, built}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintln(tw)
}
