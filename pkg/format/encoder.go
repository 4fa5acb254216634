package format

import (
	"io"

	"pkg.jsn.cam/rostergen/pkg/roster"
)

// Encoder serializes roster rows to a single output stream.
type Encoder interface {
	// Open binds the encoder to w and writes any header
	Open(w io.Writer) error

	// Write appends one row
	Write(e roster.Employee) error

	// Close flushes buffered output; it does not close the underlying writer
	Close() error

	// Description returns a human-readable description of the format
	Description() string
}

// Header is the column layout shared by all tabular encoders.
var Header = []string{"Id", "firstName", "lastName", "salary", "managerId"}
