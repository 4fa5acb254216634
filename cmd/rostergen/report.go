package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"pkg.jsn.cam/rostergen/internal/manifest"
	"pkg.jsn.cam/rostergen/pkg/rostergen"
)

func printResult(w io.Writer, res *rostergen.Result) {
	fmt.Fprintf(w, "Mock data with %d rows written to %s\n", res.Rows, res.Path)
	fmt.Fprintf(w, "  Format:    %s\n", res.Format)
	fmt.Fprintf(w, "  Size:      %s\n", humanize.Bytes(uint64(res.Bytes)))
	fmt.Fprintf(w, "  Seed:      %d\n", res.Seed)
	fmt.Fprintf(w, "  Max depth: %d\n", res.MaxDepth)
}

func printHistory(w io.Writer, store *manifest.Store) error {
	runs, err := store.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded")
		return nil
	}

	fmt.Fprintf(w, "%-36s %-20s %8s %-8s %10s %s\n", "RUN ID", "CREATED", "ROWS", "FORMAT", "SIZE", "PATH")
	fmt.Fprintln(w, "─────────────────────────────────────────────────────────────────────────────────────────────")
	for _, run := range runs {
		fmt.Fprintf(w, "%-36s %-20s %8s %-8s %10s %s\n",
			run.ID,
			run.CreatedAt.Format("2006-01-02 15:04:05"),
			humanize.Comma(int64(run.Rows)),
			run.Format,
			humanize.Bytes(uint64(run.Bytes)),
			run.Path)
	}
	return nil
}
