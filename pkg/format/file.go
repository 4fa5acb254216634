package format

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"pkg.jsn.cam/rostergen/pkg/roster"
)

// WriteFile creates or truncates path and writes employees to it in order
// using the named encoder. It returns the size of the written file. A failure
// midway can leave a partial file behind.
func WriteFile(path, name string, employees []roster.Employee) (int64, error) {
	enc, err := Get(name)
	if err != nil {
		return 0, err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return 0, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	buf := bufio.NewWriter(file)
	if err := enc.Open(buf); err != nil {
		return 0, fmt.Errorf("failed to open %s encoder: %w", name, err)
	}
	for _, e := range employees {
		if err := enc.Write(e); err != nil {
			return 0, fmt.Errorf("failed to write employee %d: %w", e.ID, err)
		}
	}
	if err := enc.Close(); err != nil {
		return 0, fmt.Errorf("failed to finish %s output: %w", name, err)
	}
	if err := buf.Flush(); err != nil {
		return 0, fmt.Errorf("failed to flush output file: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		return 0, fmt.Errorf("failed to stat output file: %w", err)
	}
	if err := file.Close(); err != nil {
		return 0, fmt.Errorf("failed to close output file: %w", err)
	}

	return info.Size(), nil
}
