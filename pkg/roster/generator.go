package roster

import (
	"fmt"
	"math/rand/v2"
)

// Generator builds rosters from a per-instance random source.
type Generator struct {
	rand *rand.Rand

	// OnRow, if set, is called after each filler row is appended.
	OnRow func()
}

// NewRand returns a PCG-backed source; equal seeds give equal filler rows.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func NewGenerator(r *rand.Rand) *Generator {
	return &Generator{rand: r}
}

// Validate rejects row counts too small to hold the fixed scenario.
func Validate(rowCount int) error {
	if rowCount < MinRows {
		return fmt.Errorf("%w: need at least %d rows, got %d", ErrInvalidInput, MinRows, rowCount)
	}
	return nil
}

// Build returns exactly rowCount employees: the fixed scenario followed by
// random filler rows.
func (g *Generator) Build(rowCount int) ([]Employee, error) {
	if err := Validate(rowCount); err != nil {
		return nil, err
	}

	employees := Scenario()
	if cap(employees) < rowCount {
		grown := make([]Employee, len(employees), rowCount)
		copy(grown, employees)
		employees = grown
	}

	for len(employees) < rowCount {
		employees = append(employees, g.filler(len(employees)))
		if g.OnRow != nil {
			g.OnRow()
		}
	}

	return employees, nil
}

// filler creates the row that follows n existing rows.
func (g *Generator) filler(n int) Employee {
	return Employee{
		ID:        n + 1,
		FirstName: FirstNames[g.rand.IntN(len(FirstNames))],
		LastName:  LastNames[g.rand.IntN(len(LastNames))],
		Salary:    SalaryMin + g.rand.IntN(SalaryMax-SalaryMin+1),
		ManagerID: g.pickManager(n),
	}
}

// pickManager draws uniformly from ids 1..n, skipping ChainLeafID. Ids only
// grow, so the graph stays acyclic whatever is drawn; the skip only keeps the
// scripted chain at its fixed length.
func (g *Generator) pickManager(n int) int {
	id := g.rand.IntN(n-1) + 1
	if id >= ChainLeafID {
		id++
	}
	return id
}
