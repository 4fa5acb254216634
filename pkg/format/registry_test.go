package format

import (
	"errors"
	"slices"
	"testing"
)

func TestGet(t *testing.T) {
	t.Parallel()

	for _, name := range List() {
		enc, err := Get(name)
		if err != nil {
			t.Errorf("Get(%q) failed: %v", name, err)
			continue
		}
		if enc.Description() == "" {
			t.Errorf("%s encoder has no description", name)
		}
	}

	if _, err := Get("xml"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Get(xml) error = %v, want ErrUnknownFormat", err)
	}
}

func TestList(t *testing.T) {
	t.Parallel()

	want := []string{"csv", "jsonl", "parquet"}
	if got := List(); !slices.Equal(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}
}

func TestForPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{"mock_employees.csv", "csv"},
		{"out/EMPLOYEES.CSV", "csv"},
		{"rows.jsonl", "jsonl"},
		{"rows.ndjson", "jsonl"},
		{"/tmp/rows.parquet", "parquet"},
		{"rows.txt", "csv"},
		{"rows", "csv"},
	}

	for _, tt := range tests {
		if got := ForPath(tt.path); got != tt.want {
			t.Errorf("ForPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
