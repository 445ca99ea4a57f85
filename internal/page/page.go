// internal/page/page.go

// Package page fits captured text to the terminal.
package page

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Clip returns at most rows lines of text, each cut to cols display
// cells. ANSI escape sequences survive and cost no width. A single
// trailing newline is dropped first so piped captures keep their last
// visible row.
func Clip(text string, rows, cols int) string {
	if rows < 1 || cols < 1 {
		return ""
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	if len(lines) > rows {
		lines = lines[:rows]
	}
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, cols, "")
	}
	return strings.Join(lines, "\n")
}
