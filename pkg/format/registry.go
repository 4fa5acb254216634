package format

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

const DefaultFormat = "csv"

// Registry maps format names to encoder factories
var Registry = map[string]func() Encoder{
	"csv":     func() Encoder { return &CSVEncoder{} },
	"jsonl":   func() Encoder { return &JSONLinesEncoder{} },
	"parquet": func() Encoder { return &ParquetEncoder{} },
}

var extensions = map[string]string{
	".csv":     "csv",
	".jsonl":   "jsonl",
	".ndjson":  "jsonl",
	".parquet": "parquet",
}

// Get returns an encoder by name
func Get(name string) (Encoder, error) {
	factory, exists := Registry[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, name)
	}
	return factory(), nil
}

// List returns all available format names, sorted
func List() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ForPath guesses the format from the file extension, falling back to csv.
func ForPath(path string) string {
	if name, ok := extensions[strings.ToLower(filepath.Ext(path))]; ok {
		return name
	}
	return DefaultFormat
}
