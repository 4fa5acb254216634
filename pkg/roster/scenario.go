package roster

// Ids of the scripted records that downstream fixtures rely on.
const (
	CEOID               = 1
	LowSalaryManagerID  = 2 // earns < 20% of the average of their reports
	HighSalaryManagerID = 3 // earns > 50% of the average of their reports
	ChainLeafID         = 15
)

type member struct {
	first, last string
	salary      int
}

var (
	lowReports  = []member{{"David", "Brown", 60000}, {"Eve", "Green", 65000}, {"Frank", "Black", 70000}}
	highReports = []member{{"Grace", "Wilson", 40000}, {"Hank", "Moore", 35000}, {"Ivy", "Taylor", 30000}}

	// Each link reports to the previous one, starting under the first of highReports.
	chain = []member{
		{"Jack", "Anderson", 25000},
		{"Kate", "Thomas", 20000},
		{"Liam", "Jackson", 15000},
		{"Mia", "Lee", 10000},
		{"Nina", "Walker", 8000},
		{"Oscar", "Hall", 6000},
	}
)

// Scenario returns a fresh copy of the fixed 15-record scenario.
func Scenario() []Employee {
	employees := make([]Employee, 0, MinRows)
	add := func(m member, managerID int) int {
		id := len(employees) + 1
		employees = append(employees, Employee{
			ID:        id,
			FirstName: m.first,
			LastName:  m.last,
			Salary:    m.salary,
			ManagerID: managerID,
		})
		return id
	}

	ceo := add(member{"Alice", "Smith", 250000}, 0)
	low := add(member{"Bob", "Jones", 10000}, ceo)
	high := add(member{"Carol", "White", 150000}, ceo)

	for _, m := range lowReports {
		add(m, low)
	}

	prev := 0
	for i, m := range highReports {
		id := add(m, high)
		if i == 0 {
			prev = id
		}
	}

	for _, m := range chain {
		prev = add(m, prev)
	}

	return employees
}
