// internal/ui/render.go
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/nhath/pluck/internal/draw"
)

// frameRenderer turns draw instructions into a terminal-sized string
// with lipgloss. It is the one concrete draw.Renderer.
type frameRenderer struct{}

// NewRenderer returns the terminal renderer.
func NewRenderer() draw.Renderer { return frameRenderer{} }

func (r frameRenderer) Render(width, height int, instructions []draw.Instruction) string {
	var canvas string
	for _, ins := range instructions {
		switch ins := ins.(type) {
		case draw.Frame:
			canvas = lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, r.frame(ins))
		case draw.Dialog:
			canvas = overlay.Composite(renderDialog(ins), canvas, overlay.Center, overlay.Center, 0, 0)
		}
	}
	return canvas
}

func (r frameRenderer) frame(f draw.Frame) string {
	lines := make([]string, len(f.Lines))
	copy(lines, f.Lines)
	for _, m := range f.Marks {
		paintMark(lines, m)
	}
	return strings.Join(lines, "\n")
}

// paintMark overlays one mark on the frame lines. Every paint keeps the
// line's display width intact, so marks can be applied in any order.
func paintMark(lines []string, m draw.Mark) {
	for row := m.Span.StartLine; row <= m.Span.EndLine; row++ {
		if row < 0 || row >= len(lines) {
			continue
		}
		width := ansi.StringWidth(lines[row])
		from, to := 0, width
		if row == m.Span.StartLine {
			from = m.Span.StartCol
		}
		if row == m.Span.EndLine && m.Span.EndCol < to {
			to = m.Span.EndCol
		}
		hint, typed := "", 0
		if row == m.Span.StartLine {
			hint, typed = m.Hint, m.Typed
		}
		lines[row] = paintRow(lines[row], from, to, hint, typed, m)
	}
}

// paintRow repaints the cells [from, to) of one line. The hint overlays
// the first cells of the span and may spill past a narrow span into the
// cells after it, as long as the line has room.
func paintRow(line string, from, to int, hint string, typed int, m draw.Mark) string {
	width := ansi.StringWidth(line)
	if to > width {
		to = width
	}
	if from >= width || to <= from {
		return line
	}
	if w := runewidth.StringWidth(hint); w > width-from {
		hint = ansi.Truncate(hint, width-from, "")
	}
	hintWidth := runewidth.StringWidth(hint)
	styledTo := to
	if from+hintWidth > styledTo {
		styledTo = from + hintWidth
	}

	var b strings.Builder
	b.WriteString(ansi.Cut(line, 0, from))
	if hint != "" {
		hintRunes := []rune(hint)
		if typed > len(hintRunes) {
			typed = len(hintRunes)
		}
		if typed > 0 {
			b.WriteString(styleOf(m.TypedStyle).Render(string(hintRunes[:typed])))
		}
		if typed < len(hintRunes) {
			b.WriteString(styleOf(m.HintStyle).Render(string(hintRunes[typed:])))
		}
	}
	if from+hintWidth < to {
		text := ansi.Strip(ansi.Cut(line, from+hintWidth, to))
		b.WriteString(styleOf(m.MatchStyle).Render(text))
	}
	b.WriteString(ansi.Cut(line, styledTo, width))
	return b.String()
}
