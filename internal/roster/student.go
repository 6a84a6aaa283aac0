package roster

import (
	"fmt"
	"strings"
)

// Student is a single prize candidate. Name is always trimmed and non-empty.
type Student struct {
	Name string
	GPA  float64
}

// NewStudent trims the name and rejects records whose name is empty or
// whitespace-only.
func NewStudent(name string, gpa float64) (Student, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Student{}, false
	}
	return Student{Name: name, GPA: gpa}, true
}

func (s Student) String() string {
	return fmt.Sprintf("%s (GPA: %.2f)", s.Name, s.GPA)
}
