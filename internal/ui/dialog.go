// internal/ui/dialog.go
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nhath/pluck/internal/draw"
)

// renderDialog builds the profile switcher box: a divider over one
// "[hotkey] name" row per profile. The box is padded to its configured
// width so it fully covers the text beneath it.
func renderDialog(d draw.Dialog) string {
	rows := make([]string, 0, len(d.Entries)+1)
	rows = append(rows, colored(d.Divider).Render(strings.Repeat("─", d.Width)))
	hotkey := colored(d.Hotkey)
	name := colored(d.Name)
	for _, e := range d.Entries {
		rows = append(rows, hotkey.Render("["+e.Hotkey+"]")+" "+name.Render(e.Name))
	}
	box := lipgloss.NewStyle().Width(d.Width)
	return box.Render(strings.Join(rows, "\n"))
}
