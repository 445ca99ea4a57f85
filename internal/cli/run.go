// internal/cli/run.go

// Package cli wires the program together: configuration, input text, the
// Bubble Tea session, and shell-friendly exit codes.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alecthomas/chroma/v2/quick"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/nhath/pluck/internal/config"
	"github.com/nhath/pluck/internal/ui"
)

// ErrCancelled reports that the user left without picking anything.
var ErrCancelled = errors.New("cancelled")

// Exit codes. The selection lands on stdout only with ExitSelected.
const (
	ExitSelected  = 0
	ExitCancelled = 1
	ExitConfig    = 2
	ExitInput     = 3
)

// Options are the command line settings for one run.
type Options struct {
	ConfigPath        string
	InputPath         string
	ShowDefaultConfig bool
	Debug             bool
}

// Run executes one selection session and prints the result to stdout.
func Run(opts Options) error {
	if opts.ShowDefaultConfig {
		return printDefaultConfig(os.Stdout)
	}

	if opts.Debug {
		f, err := tea.LogToFile("debug.log", "debug")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	text, err := readInput(opts.InputPath)
	if err != nil {
		return err
	}
	log.Printf("loaded %d profiles, read %d bytes of input", len(cfg.Profiles), len(text))

	// The UI goes to stderr and reads keys from the terminal directly,
	// leaving stdout for the selection even when text is piped in.
	p := tea.NewProgram(
		ui.NewModel(cfg, text),
		tea.WithAltScreen(),
		tea.WithOutput(os.Stderr),
		tea.WithInputTTY(),
	)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	m, ok := final.(ui.Model)
	if !ok {
		return fmt.Errorf("unexpected final model %T", final)
	}
	selected, ok := m.Selected()
	if !ok {
		log.Print("cancelled")
		return ErrCancelled
	}
	log.Printf("selected %d bytes", len(selected))
	fmt.Fprint(os.Stdout, selected)
	return nil
}

// ExitCode folds an error from Run into the exit status.
func ExitCode(err error) int {
	var cfgErr *config.Error
	switch {
	case err == nil:
		return ExitSelected
	case errors.Is(err, ErrCancelled):
		return ExitCancelled
	case errors.As(err, &cfgErr):
		return ExitConfig
	default:
		return ExitInput
	}
}

// readInput loads the text to select from: a named file, or whatever is
// piped into stdin.
func readInput(path string) (string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return string(data), nil
	}
	if isatty.IsTerminal(os.Stdin.Fd()) {
		return "", errors.New("no input: pipe text in or name a file")
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

// printDefaultConfig writes the built-in configuration, highlighted when
// stdout is a terminal.
func printDefaultConfig(w io.Writer) error {
	doc := config.DefaultTOML()
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return quick.Highlight(w, doc, "toml", "terminal256", "nord")
	}
	_, err := io.WriteString(w, doc)
	return err
}
