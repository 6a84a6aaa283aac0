package roster

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParseHTML extracts students from the table rows of an HTML roster. The
// first two cells of each row are read as (name, gpa) and validated the same
// way as delimited text, so a single header row is tolerated.
func ParseHTML(r io.Reader) ([]Student, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse roster HTML: %w", err)
	}

	var (
		out           []Student
		headerSkipped bool
	)
	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td, th")
		if cells.Length() < 2 {
			return
		}

		name := strings.TrimSpace(cells.Eq(0).Text())
		gpaText := strings.TrimSpace(cells.Eq(1).Text())

		gpa, err := strconv.ParseFloat(gpaText, 64)
		if err != nil {
			if !headerSkipped {
				headerSkipped = true
				return
			}
			slog.Warn("skipping bad GPA row", "name", name, "gpa", gpaText)
			return
		}

		if s, ok := NewStudent(name, gpa); ok {
			out = append(out, s)
		}
	})
	return out, nil
}
