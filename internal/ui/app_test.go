// internal/ui/app_test.go
package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhath/pluck/internal/config"
	"github.com/nhath/pluck/internal/selection"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{
		SwitchKey:     "space",
		MaxHintLength: 2,
		Profiles: []config.Profile{
			{
				Name:     "urls",
				Hotkey:   "u",
				Alphabet: "ab",
				Dialog:   config.Dialog{Width: 20},
				Patterns: []config.Pattern{{Priority: 1, Regex: `https?://\S+`}},
			},
			{
				Name:     "digits",
				Hotkey:   "d",
				Alphabet: "ab",
				Dialog:   config.Dialog{Width: 20},
				Patterns: []config.Pattern{{Priority: 1, Regex: `[0-9]+`}},
			},
		},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config: %v", err)
	}
	return cfg
}

func sized(t *testing.T, m Model, w, h int) Model {
	t.Helper()
	next, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return next.(Model)
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModelSelectsOnHint(t *testing.T) {
	m := NewModel(testConfig(t), "go to http://x.test or http://y.test")
	m = sized(t, m, 60, 4)

	m, cmd := press(t, m, runeKey('b'))
	if cmd == nil {
		t.Fatal("no command after an exact hint")
	}
	if msg := cmd(); msg != (tea.QuitMsg{}) {
		t.Fatalf("command produced %T, want tea.QuitMsg", msg)
	}
	text, ok := m.Selected()
	if !ok || text != "http://y.test" {
		t.Errorf("Selected() = %q, %v, want the second URL", text, ok)
	}
	if m.Cancelled() {
		t.Error("finished session reports cancelled")
	}
}

func TestModelCancelKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{{Type: tea.KeyEscape}, {Type: tea.KeyCtrlC}} {
		m := NewModel(testConfig(t), "http://x.test")
		m = sized(t, m, 40, 4)

		m, cmd := press(t, m, msg)
		if cmd == nil {
			t.Fatalf("%s: no quit command", msg)
		}
		if !m.Cancelled() {
			t.Errorf("%s: not cancelled", msg)
		}
		if _, ok := m.Selected(); ok {
			t.Errorf("%s: cancelled session reports a selection", msg)
		}
	}
}

func TestModelBeforeFirstSize(t *testing.T) {
	m := NewModel(testConfig(t), "http://x.test")

	if m.View() != "Loading..." {
		t.Errorf("View() = %q before sizing", m.View())
	}
	next, cmd := press(t, m, runeKey('a'))
	if cmd != nil {
		t.Error("key press before sizing produced a command")
	}
	if _, cmd = press(t, next, tea.KeyMsg{Type: tea.KeyCtrlC}); cmd == nil {
		t.Error("ctrl+c before sizing did not quit")
	}
}

func TestModelSwitchKeyOpensDialog(t *testing.T) {
	m := NewModel(testConfig(t), "8080 http://x.test")
	m = sized(t, m, 40, 4)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	view := m.View()
	if !strings.Contains(view, "[u] urls") || !strings.Contains(view, "[d] digits") {
		t.Fatalf("dialog rows missing from view:\n%s", view)
	}

	m, _ = press(t, m, runeKey('d'))
	if got := m.session.State(); got != selection.StateSelecting {
		t.Fatalf("state = %v after picking a profile", got)
	}
	labels := m.session.Labels()
	if len(labels) != 1 || labels[0].Span.Text != "8080" {
		t.Errorf("labels after switch = %+v, want the digits match", labels)
	}
}

func TestModelResizeKeepsSession(t *testing.T) {
	m := NewModel(testConfig(t), "pick http://x.test now")
	m = sized(t, m, 60, 4)
	m, _ = press(t, m, runeKey('z'))

	m = sized(t, m, 30, 2)
	if m.session.State() != selection.StateSelecting {
		t.Fatalf("resize changed state to %v", m.session.State())
	}
	labels := m.session.Labels()
	if len(labels) != 1 || labels[0].Span.Text != "http://x.test" {
		t.Errorf("labels after resize = %+v", labels)
	}
}

func TestActionFor(t *testing.T) {
	cases := []struct {
		name      string
		msg       tea.KeyMsg
		switchKey string
		want      selection.Action
	}{
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, "space", selection.Cancel{}},
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, "space", selection.Cancel{}},
		{"space switch", tea.KeyMsg{Type: tea.KeySpace}, "space", selection.SwitchProfile{}},
		{"space rune switch", runeKey(' '), "space", selection.SwitchProfile{}},
		{"tab switch", tea.KeyMsg{Type: tea.KeyTab}, "tab", selection.SwitchProfile{}},
		{"plain rune", runeKey('x'), "space", selection.CharTyped{Rune: 'x'}},
		{"arrow ignored", tea.KeyMsg{Type: tea.KeyUp}, "space", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := actionFor(tc.msg, tc.switchKey)
			if got != tc.want {
				t.Errorf("actionFor(%s) = %#v, want %#v", tc.msg, got, tc.want)
			}
		})
	}
}
