// Package report renders the prize report as plain text. It is
// presentation-only and prints exactly what it is given.
package report

import (
	"fmt"
	"strings"

	"github.com/scims/gpa_prize_tui/internal/roster"
)

// Render lays out the ranked winners numbered from 1, the alphabetical
// eligible list, and the trailing eligible-count summary.
func Render(winners, alphabetical []roster.Student, eligible, maxRecipients int, threshold float64) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🎓 Top GPA Students (up to %d, GPA > %.2f):\n", maxRecipients, threshold)
	for i, s := range winners {
		fmt.Fprintf(&b, "%d. %s\n", i+1, s)
	}

	b.WriteString("\n📜 Eligible Students (Alphabetical):\n")
	for _, s := range alphabetical {
		fmt.Fprintf(&b, "%s\n", s)
	}

	fmt.Fprintf(&b, "\nℹ️  Total eligible (GPA > %.2f): %d\n", threshold, eligible)
	return b.String()
}
