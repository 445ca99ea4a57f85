// internal/selection/session.go

// Package selection runs the hint picking session: match the visible
// text, label every span, and fold key presses into a final selection.
package selection

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"

	"github.com/nhath/pluck/internal/config"
	"github.com/nhath/pluck/internal/draw"
	"github.com/nhath/pluck/internal/hint"
	"github.com/nhath/pluck/internal/match"
)

// State names the session phase.
type State string

const (
	StateSelecting        State = "SELECTING"
	StateSwitchingProfile State = "SWITCHING_PROFILE"
	StateDone             State = "DONE"
	StateCancelled        State = "CANCELLED"
)

// Action is one input event fed to the session.
type Action interface {
	isAction()
}

// CharTyped is a printable key press.
type CharTyped struct {
	Rune rune
}

// SwitchProfile asks for the profile dialog.
type SwitchProfile struct{}

// Cancel abandons the session.
type Cancel struct{}

func (CharTyped) isAction()     {}
func (SwitchProfile) isAction() {}
func (Cancel) isAction()        {}

// Label pairs a hint with the span it picks. Hint is empty when the span
// exceeds what the alphabet can address at the configured ceiling.
type Label struct {
	Hint string
	Span match.Span
}

// Session holds one selection run over a fixed page of text. It is not
// safe for concurrent use; the event loop owns it.
type Session struct {
	cfg      *config.Config
	lines    []string
	plain    string
	active   int
	labels   []Label
	buffer   string
	state    State
	selected string
}

// New starts a session over text using the first profile. Text may carry
// ANSI styling; matching happens on the stripped form.
func New(cfg *config.Config, text string) *Session {
	s := &Session{cfg: cfg, state: StateSelecting}
	s.setText(text)
	return s
}

// State returns the current phase.
func (s *Session) State() State { return s.state }

// Labels returns the current hint assignment in reading order.
func (s *Session) Labels() []Label { return s.labels }

// Selected returns the picked text once the session is done.
func (s *Session) Selected() (string, bool) {
	if s.state != StateDone {
		return "", false
	}
	return s.selected, true
}

// View returns the instructions for the current state without applying an
// action. Terminal states draw nothing.
func (s *Session) View() []draw.Instruction {
	switch s.state {
	case StateDone, StateCancelled:
		return nil
	case StateSwitchingProfile:
		return []draw.Instruction{s.frame(), s.dialog()}
	default:
		return []draw.Instruction{s.frame()}
	}
}

// Apply folds one action into the session and returns what to draw next.
// Nil means the session has reached a terminal state, or already was in
// one, and the caller should stop.
func (s *Session) Apply(a Action) []draw.Instruction {
	switch s.state {
	case StateDone, StateCancelled:
		return nil
	case StateSwitchingProfile:
		s.applyDialog(a)
	default:
		s.applySelecting(a)
	}
	return s.View()
}

// Reset swaps in a fresh page of text, as after a terminal resize. The
// active profile survives, the typed buffer does not. Terminal sessions
// ignore it.
func (s *Session) Reset(text string) []draw.Instruction {
	if s.state == StateDone || s.state == StateCancelled {
		return nil
	}
	s.setText(text)
	return s.View()
}

func (s *Session) applySelecting(a Action) {
	switch a := a.(type) {
	case Cancel:
		s.state = StateCancelled
	case SwitchProfile:
		// A populated buffer never coexists with the dialog.
		s.buffer = ""
		s.state = StateSwitchingProfile
	case CharTyped:
		s.typed(a.Rune)
	}
}

// applyDialog handles input while the profile dialog is up. Only a
// profile hotkey does anything; every other action, the cancel key
// included, puts the previous selection state back on screen.
func (s *Session) applyDialog(a Action) {
	s.state = StateSelecting
	ct, ok := a.(CharTyped)
	if !ok {
		return
	}
	for i := range s.cfg.Profiles {
		if s.cfg.Profiles[i].HotkeyRune() == ct.Rune {
			s.active = i
			s.recompute()
			return
		}
	}
}

func (s *Session) typed(r rune) {
	next := s.buffer + string(r)
	exact, prefix := s.lookup(next)
	switch {
	case exact != nil:
		s.state = StateDone
		s.selected = exact.Span.Text
	case prefix:
		s.buffer = next
	default:
		s.buffer = ""
	}
}

// lookup finds the label whose hint equals typed, and whether typed is a
// proper prefix of any hint. Hints share a length, so both cannot hold at
// once.
func (s *Session) lookup(typed string) (*Label, bool) {
	prefix := false
	for i := range s.labels {
		l := &s.labels[i]
		if l.Hint == "" {
			continue
		}
		if l.Hint == typed {
			return l, false
		}
		if strings.HasPrefix(l.Hint, typed) {
			prefix = true
		}
	}
	return nil, prefix
}

func (s *Session) setText(text string) {
	s.lines = strings.Split(text, "\n")
	s.plain = ansi.Strip(text)
	s.recompute()
}

// recompute rebuilds spans and hints for the active profile and clears
// the typed buffer.
func (s *Session) recompute() {
	p := s.profile()
	groups := make([]match.Group, len(p.Patterns))
	for i := range p.Patterns {
		groups[i] = match.Group{Priority: p.Patterns[i].Priority, Pattern: p.Patterns[i].Compiled()}
	}
	spans := match.Find(s.plain, groups)
	hints := hint.Assign(len(spans), []rune(p.Alphabet), s.cfg.MaxHintLength)
	s.labels = make([]Label, len(spans))
	for i := range spans {
		s.labels[i] = Label{Hint: hints[i], Span: spans[i]}
	}
	s.buffer = ""
}

func (s *Session) profile() *config.Profile { return &s.cfg.Profiles[s.active] }

func (s *Session) frame() draw.Instruction {
	p := s.profile()
	typed := utf8.RuneCountInString(s.buffer)
	marks := make([]draw.Mark, len(s.labels))
	for i, l := range s.labels {
		m := draw.Mark{
			Span:       l.Span,
			Hint:       l.Hint,
			HintStyle:  style(p.Hint),
			TypedStyle: style(p.Typed),
			MatchStyle: style(p.Patterns[l.Span.Group].Style),
		}
		if s.buffer != "" {
			if l.Hint != "" && strings.HasPrefix(l.Hint, s.buffer) {
				m.Typed = typed
			} else {
				m.Hint = ""
			}
		}
		marks[i] = m
	}
	return draw.Frame{Lines: s.lines, Marks: marks}
}

func (s *Session) dialog() draw.Instruction {
	p := s.profile()
	entries := make([]draw.DialogEntry, len(s.cfg.Profiles))
	for i := range s.cfg.Profiles {
		entries[i] = draw.DialogEntry{
			Hotkey: s.cfg.Profiles[i].Hotkey,
			Name:   s.cfg.Profiles[i].Name,
		}
	}
	return draw.Dialog{
		Entries: entries,
		Divider: p.Dialog.Divider,
		Hotkey:  p.Dialog.Hotkey,
		Name:    p.Dialog.Name,
		Width:   p.Dialog.Width,
	}
}

func style(cs config.Style) draw.Style {
	return draw.Style{Foreground: cs.Foreground, Background: cs.Background}
}
