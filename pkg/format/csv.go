package format

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"

	"pkg.jsn.cam/rostergen/pkg/roster"
)

// CSVEncoder writes comma-separated rows under Header. The root's managerId
// is an empty field.
type CSVEncoder struct {
	w   *csv.Writer
	row []string
}

func (c *CSVEncoder) Open(w io.Writer) error {
	c.w = csv.NewWriter(w)
	c.row = make([]string, len(Header))
	return c.w.Write(Header)
}

func (c *CSVEncoder) Write(e roster.Employee) error {
	c.row[0] = strconv.Itoa(e.ID)
	c.row[1] = e.FirstName
	c.row[2] = e.LastName
	c.row[3] = strconv.Itoa(e.Salary)
	c.row[4] = ""
	if e.HasManager() {
		c.row[4] = strconv.Itoa(e.ManagerID)
	}
	return c.w.Write(c.row)
}

func (c *CSVEncoder) Close() error {
	c.w.Flush()
	return c.w.Error()
}

func (c *CSVEncoder) Description() string {
	return "Comma-separated: Id,firstName,lastName,salary,managerId"
}

// ReadCSV parses a roster written by CSVEncoder.
func ReadCSV(r io.Reader) ([]roster.Employee, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: missing header", ErrMalformed)
		}
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if !slices.Equal(header, Header) {
		return nil, fmt.Errorf("%w: unexpected header %v", ErrMalformed, header)
	}

	var employees []roster.Employee
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return employees, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}

		e, err := parseRow(rec)
		if err != nil {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformed, line, err)
		}
		employees = append(employees, e)
	}
}

func parseRow(rec []string) (roster.Employee, error) {
	var (
		e   roster.Employee
		err error
	)

	if e.ID, err = strconv.Atoi(rec[0]); err != nil {
		return e, fmt.Errorf("id: %w", err)
	}
	e.FirstName = rec[1]
	e.LastName = rec[2]
	if e.Salary, err = strconv.Atoi(rec[3]); err != nil {
		return e, fmt.Errorf("salary: %w", err)
	}
	if rec[4] != "" {
		if e.ManagerID, err = strconv.Atoi(rec[4]); err != nil {
			return e, fmt.Errorf("managerId: %w", err)
		}
	}
	return e, nil
}
