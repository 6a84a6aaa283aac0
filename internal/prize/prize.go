// Package prize selects prize recipients from a roster by GPA.
package prize

import (
	"sort"
	"strings"

	"github.com/scims/gpa_prize_tui/internal/roster"
)

const (
	// DefaultThreshold is the GPA a student must strictly exceed to be
	// eligible. A GPA of exactly 4.0 does not qualify.
	DefaultThreshold = 4.0

	// DefaultMaxRecipients caps the ranked winners list.
	DefaultMaxRecipients = 5
)

// Picker computes the two prize views over a roster without mutating it.
type Picker struct {
	Threshold     float64
	MaxRecipients int
}

func NewPicker() Picker {
	return Picker{
		Threshold:     DefaultThreshold,
		MaxRecipients: DefaultMaxRecipients,
	}
}

func (p Picker) Eligible(s roster.Student) bool {
	return s.GPA > p.Threshold
}

// TopRecipients returns up to MaxRecipients eligible students in descending
// GPA order.
func (p Picker) TopRecipients(students []roster.Student) []roster.Student {
	q := NewQueue(students, p.Threshold)
	var out []roster.Student
	for len(out) < p.MaxRecipients {
		s, ok := q.PopMax()
		if !ok {
			break
		}
		out = append(out, s)
	}
	return out
}

// Alphabetical returns every eligible student sorted by name,
// case-insensitively. The source slice is never reordered.
func (p Picker) Alphabetical(students []roster.Student) []roster.Student {
	var out []roster.Student
	for _, s := range students {
		if p.Eligible(s) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

// CountEligible returns the number of eligible students, independent of the
// MaxRecipients cap.
func (p Picker) CountEligible(students []roster.Student) int {
	n := 0
	for _, s := range students {
		if p.Eligible(s) {
			n++
		}
	}
	return n
}
