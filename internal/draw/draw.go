// internal/draw/draw.go

// Package draw defines the instructions the selection engine emits. They
// are plain data: deciding what to show and putting it on a terminal stay
// in different packages.
package draw

import "github.com/nhath/pluck/internal/match"

// Style is a foreground/background color pair in whatever notation the
// renderer understands.
type Style struct {
	Foreground string
	Background string
}

// Instruction is one drawing step. A full redraw is a Frame optionally
// followed by a Dialog layered over it.
type Instruction interface {
	isInstruction()
}

// Mark decorates one span with its hint. Typed counts the hint runes the
// user has already entered. An empty Hint means the span is highlighted
// but cannot be picked: either no hint fit the alphabet ceiling, or the
// typed buffer has filtered it out.
type Mark struct {
	Span       match.Span
	Hint       string
	Typed      int
	HintStyle  Style
	TypedStyle Style
	MatchStyle Style
}

// Frame redraws the whole screen: the captured lines with every mark
// painted over them. Lines may carry their original ANSI styling.
type Frame struct {
	Lines []string
	Marks []Mark
}

func (Frame) isInstruction() {}

// DialogEntry is one selectable profile row.
type DialogEntry struct {
	Hotkey string
	Name   string
}

// Dialog overlays the profile switcher on the current frame. Divider,
// Hotkey and Name are colors.
type Dialog struct {
	Entries []DialogEntry
	Divider string
	Hotkey  string
	Name    string
	Width   int
}

func (Dialog) isInstruction() {}

// Renderer turns instructions into a single string sized to the terminal.
type Renderer interface {
	Render(width, height int, instructions []Instruction) string
}
