// Package rostergen writes mock employee rosters for hierarchy and salary
// fixtures.
package rostergen

import (
	"math/rand/v2"

	"pkg.jsn.cam/rostergen/pkg/format"
	"pkg.jsn.cam/rostergen/pkg/roster"
)

// Result describes a finished generation run.
type Result struct {
	Rows     int
	Path     string
	Format   string
	Seed     uint64
	Bytes    int64
	MaxDepth int
}

type config struct {
	seed     uint64
	seeded   bool
	format   string
	progress func()
}

type Option func(*config)

// WithSeed fixes the filler rows so repeated runs produce the same file.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
		c.seeded = true
	}
}

// WithFormat selects an encoder from format.Registry. By default the format
// follows the output file extension.
func WithFormat(name string) Option {
	return func(c *config) {
		c.format = name
	}
}

// WithProgress registers a callback invoked after each filler row.
func WithProgress(fn func()) Option {
	return func(c *config) {
		c.progress = fn
	}
}

// Generate builds a roster of rowCount employees and writes it to outputPath,
// replacing any existing file. An empty outputPath means
// roster.DefaultOutputPath. Row counts below roster.MinRows fail with
// roster.ErrInvalidInput before anything is written.
func Generate(rowCount int, outputPath string, opts ...Option) (*Result, error) {
	if err := roster.Validate(rowCount); err != nil {
		return nil, err
	}

	if outputPath == "" {
		outputPath = roster.DefaultOutputPath
	}

	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.seeded {
		cfg.seed = rand.Uint64()
	}
	if cfg.format == "" {
		cfg.format = format.ForPath(outputPath)
	}
	if _, err := format.Get(cfg.format); err != nil {
		return nil, err
	}

	gen := roster.NewGenerator(roster.NewRand(cfg.seed))
	gen.OnRow = cfg.progress

	employees, err := gen.Build(rowCount)
	if err != nil {
		return nil, err
	}

	depth, err := roster.MaxDepth(employees)
	if err != nil {
		return nil, err
	}

	size, err := format.WriteFile(outputPath, cfg.format, employees)
	if err != nil {
		return nil, err
	}

	return &Result{
		Rows:     len(employees),
		Path:     outputPath,
		Format:   cfg.format,
		Seed:     cfg.seed,
		Bytes:    size,
		MaxDepth: depth,
	}, nil
}
