package format

import (
	"io"

	"github.com/parquet-go/parquet-go"

	"pkg.jsn.cam/rostergen/pkg/roster"
)

// ParquetEncoder writes a single parquet file whose columns follow Header.
// managerId is optional and null for the root.
type ParquetEncoder struct {
	w *parquet.GenericWriter[roster.Employee]
}

func (p *ParquetEncoder) Open(w io.Writer) error {
	p.w = parquet.NewGenericWriter[roster.Employee](w)
	return nil
}

func (p *ParquetEncoder) Write(e roster.Employee) error {
	_, err := p.w.Write([]roster.Employee{e})
	return err
}

func (p *ParquetEncoder) Close() error {
	return p.w.Close()
}

func (p *ParquetEncoder) Description() string {
	return "Parquet: columns Id, firstName, lastName, salary, managerId (optional)"
}
