package roster

// Name pools for filler rows.
var FirstNames = []string{
	"Alice", "Bob", "Carol", "David", "Eve", "Frank", "Grace", "Hank", "Ivy", "Jack",
	"Kate", "Liam", "Mia", "Nina", "Oscar", "Paul", "Quinn", "Ruth", "Sam", "Tina",
}

var LastNames = []string{
	"Smith", "Jones", "White", "Brown", "Green", "Black", "Wilson", "Moore", "Taylor", "Anderson",
	"Thomas", "Jackson", "Lee", "Walker", "Hall", "Allen", "Wright", "King", "Scott", "Young",
}
