// internal/ui/app.go

// Package ui is the Bubble Tea front end: it feeds key presses to the
// selection session and puts its draw instructions on screen.
package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhath/pluck/internal/config"
	"github.com/nhath/pluck/internal/draw"
	"github.com/nhath/pluck/internal/page"
	"github.com/nhath/pluck/internal/selection"
)

// Model is the root Bubble Tea model.
type Model struct {
	cfg      *config.Config
	raw      string
	session  *selection.Session
	renderer draw.Renderer

	width, height int
	view          []draw.Instruction
}

// NewModel wraps the captured text. The session starts on the first
// window size message, once the page dimensions are known.
func NewModel(cfg *config.Config, text string) Model {
	return Model{cfg: cfg, raw: text, renderer: NewRenderer()}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		clipped := page.Clip(m.raw, msg.Height, msg.Width)
		if m.session == nil {
			m.session = selection.New(m.cfg, clipped)
			m.view = m.session.View()
		} else {
			m.view = m.session.Reset(clipped)
		}
		return m, nil

	case tea.KeyMsg:
		if m.session == nil {
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			return m, nil
		}
		act := actionFor(msg, m.cfg.SwitchKey)
		if act == nil {
			return m, nil
		}
		instrs := m.session.Apply(act)
		switch m.session.State() {
		case selection.StateDone, selection.StateCancelled:
			return m, tea.Quit
		}
		m.view = instrs
		return m, nil
	}
	return m, nil
}

// View renders the current frame.
func (m Model) View() string {
	if m.session == nil || m.width == 0 {
		return "Loading..."
	}
	return m.renderer.Render(m.width, m.height, m.view)
}

// Selected returns the picked text once the session has finished.
func (m Model) Selected() (string, bool) {
	if m.session == nil {
		return "", false
	}
	return m.session.Selected()
}

// Cancelled reports whether the user abandoned the session.
func (m Model) Cancelled() bool {
	return m.session != nil && m.session.State() == selection.StateCancelled
}
