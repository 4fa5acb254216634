package roster

const (
	// MinRows is the smallest roster that holds the full fixed scenario.
	MinRows = 15

	SalaryMin = 5000
	SalaryMax = 80000

	DefaultOutputPath = "mock_employees.csv"
)

// Employee is a single roster row. ManagerID is 0 for the root.
type Employee struct {
	ID        int    `json:"id" parquet:"Id"`
	FirstName string `json:"firstName" parquet:"firstName"`
	LastName  string `json:"lastName" parquet:"lastName"`
	Salary    int    `json:"salary" parquet:"salary"`
	ManagerID int    `json:"managerId,omitempty" parquet:"managerId,optional"`
}

// HasManager reports whether e reports to someone.
func (e Employee) HasManager() bool {
	return e.ManagerID != 0
}
