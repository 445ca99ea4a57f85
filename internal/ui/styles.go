// internal/ui/styles.go
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhath/pluck/internal/draw"
)

// styleOf builds a lipgloss style from an instruction color pair. Empty
// fields stay unset so the underlying terminal colors show through.
func styleOf(s draw.Style) lipgloss.Style {
	st := lipgloss.NewStyle()
	if s.Foreground != "" {
		st = st.Foreground(lipgloss.Color(s.Foreground))
	}
	if s.Background != "" {
		st = st.Background(lipgloss.Color(s.Background))
	}
	return st
}

// colored applies a single foreground color.
func colored(c string) lipgloss.Style {
	st := lipgloss.NewStyle()
	if c != "" {
		st = st.Foreground(lipgloss.Color(c))
	}
	return st
}
