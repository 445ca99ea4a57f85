// internal/ui/keymap.go
package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhath/pluck/internal/selection"
)

// keyName translates a configured key to the string bubbletea reports
// for it. Only space differs: a config file spells it "space", while a
// space press reads as " ".
func keyName(configured string) string {
	if configured == "space" {
		return " "
	}
	return configured
}

// actionFor maps a key press to a session action. The switch key is a
// bubbletea key name from the configuration and is matched before plain
// runes, so it stays reachable from every state. Unmapped keys return
// nil.
func actionFor(msg tea.KeyMsg, switchKey string) selection.Action {
	switch msg.String() {
	case "ctrl+c", "esc":
		return selection.Cancel{}
	case switchKey, keyName(switchKey):
		return selection.SwitchProfile{}
	}
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		return selection.CharTyped{Rune: msg.Runes[0]}
	}
	return nil
}
