package roster

// Sample returns the built-in reference roster of ten students. Heidi sits
// exactly on the 4.0 threshold and is therefore never eligible.
func Sample() []Student {
	return []Student{
		{Name: "Alice", GPA: 4.50},
		{Name: "Bob", GPA: 3.90},
		{Name: "Charlie", GPA: 4.20},
		{Name: "David", GPA: 4.80},
		{Name: "Eve", GPA: 4.10},
		{Name: "Frank", GPA: 3.50},
		{Name: "Grace", GPA: 4.70},
		{Name: "Heidi", GPA: 4.00},
		{Name: "Ivan", GPA: 4.35},
		{Name: "Judy", GPA: 3.80},
	}
}
