package roster

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

var commaSplit = regexp.MustCompile(`\s*,\s*`)

// ParseLines converts raw roster lines into students, in input order.
// Blank lines and #-comments are ignored, rows with fewer than two fields
// are dropped silently, and a single leading header row (first row whose
// second field is not a number) is tolerated. Any later row with a
// non-numeric GPA is logged and skipped.
func ParseLines(lines []string) []Student {
	var out []Student
	headerSkipped := false
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := splitLine(line)
		if len(parts) < 2 {
			continue
		}

		gpa, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			if !headerSkipped {
				headerSkipped = true
				continue
			}
			slog.Warn("skipping bad GPA row", "line", line)
			continue
		}

		if s, ok := NewStudent(parts[0], gpa); ok {
			out = append(out, s)
		}
	}
	return out
}

// splitLine picks a delimiter per row: comma wins over tab, tab wins over
// runs of whitespace.
func splitLine(line string) []string {
	if strings.Contains(line, ",") {
		return commaSplit.Split(line, -1)
	}
	if strings.Contains(line, "\t") {
		return strings.Split(line, "\t")
	}
	return strings.Fields(line)
}

// ParseReader parses a delimited-text roster from r.
func ParseReader(r io.Reader) ([]Student, error) {
	sc := bufio.NewScanner(r)
	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read roster: %w", err)
	}
	return ParseLines(lines), nil
}

// LoadFile reads a roster file, choosing the HTML parser for .html/.htm
// files and the delimited-text parser for everything else.
func LoadFile(path string) ([]Student, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open roster file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return ParseHTML(f)
	default:
		return ParseReader(f)
	}
}
