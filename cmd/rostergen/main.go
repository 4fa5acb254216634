package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/schollz/progressbar/v3"

	"pkg.jsn.cam/rostergen/internal/manifest"
	"pkg.jsn.cam/rostergen/pkg/format"
	"pkg.jsn.cam/rostergen/pkg/roster"
	"pkg.jsn.cam/rostergen/pkg/rostergen"
)

/*writes a mock employee roster: a fixed 15 row scenario plus random filler*/

var (
	Rows         = flag.Int("rows", roster.MinRows, "Total number of employees to generate (at least 15)")
	OutputPath   = flag.String("output", roster.DefaultOutputPath, "Output file path")
	Format       = flag.String("format", "", "Output format (default: from the output extension)")
	Seed         = flag.Uint64("seed", 0, "Random seed for filler rows (0 = random)")
	Progress     = flag.Bool("progress", false, "Show a progress bar while generating filler rows")
	ManifestPath = flag.String("manifest", "", "Record the run in this manifest database")
	History      = flag.Bool("history", false, "Print the runs recorded in -manifest and exit")
	ListFormats  = flag.Bool("formats", false, "List output formats and exit")
)

func main() {
	flag.Parse()

	if *ListFormats {
		printFormats()
		return
	}

	if *History {
		if *ManifestPath == "" {
			log.Fatal("-history requires -manifest")
		}
		store, err := manifest.Open(*ManifestPath)
		if err != nil {
			log.Fatalf("Failed to open manifest: %v", err)
		}
		defer store.Close()

		if err := printHistory(os.Stdout, store); err != nil {
			log.Fatalf("Failed to read manifest: %v", err)
		}
		return
	}

	opts := []rostergen.Option{}
	if *Seed != 0 {
		opts = append(opts, rostergen.WithSeed(*Seed))
	}
	if *Format != "" {
		opts = append(opts, rostergen.WithFormat(*Format))
	}
	var bar *progressbar.ProgressBar
	if *Progress && *Rows > roster.MinRows {
		bar = progressbar.Default(int64(*Rows-roster.MinRows), "filler rows")
		opts = append(opts, rostergen.WithProgress(func() { bar.Add(1) }))
	}

	res, err := rostergen.Generate(*Rows, *OutputPath, opts...)
	if err != nil {
		log.Fatalf("Failed to generate roster: %v", err)
	}
	if bar != nil {
		bar.Finish()
	}

	if *ManifestPath != "" {
		if err := recordRun(*ManifestPath, res); err != nil {
			log.Printf("Warning: run not recorded: %v", err)
		}
	}

	printResult(os.Stdout, res)
}

func recordRun(path string, res *rostergen.Result) error {
	store, err := manifest.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	run, err := store.Record(manifest.Run{
		Rows:   res.Rows,
		Path:   res.Path,
		Format: res.Format,
		Seed:   res.Seed,
		Bytes:  res.Bytes,
	})
	if err != nil {
		return err
	}

	log.Printf("Recorded run %s in %s", run.ID, path)
	return nil
}

func printFormats() {
	for _, name := range format.List() {
		enc, _ := format.Get(name)
		fmt.Printf("  %-8s %s\n", name, enc.Description())
	}
}
