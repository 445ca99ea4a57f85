// internal/config/config.go
package config

import (
	_ "embed"
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
)

//go:embed default.toml
var defaultTOML string

const (
	// DefaultSwitchKey opens the profile dialog when no switch_key is set.
	DefaultSwitchKey = "space"

	defaultMaxHintLength = 2
	defaultAlphabet      = "qwertyuiopasdfghjklzxcvbnm"
	defaultDialogWidth   = 32
)

// configFile is the path searched under the XDG config directories.
const configFile = "pluck/config.toml"

// Error reports a configuration that could not be loaded or validated.
// Path is empty when the built-in defaults were in play.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("config: %v", e.Err)
	}
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Style names a foreground/background color pair. Values are passed to the
// renderer untouched, so anything lipgloss accepts works: hex strings or
// ANSI palette numbers.
type Style struct {
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`
}

// Dialog styles the profile switch dialog drawn over the frame.
type Dialog struct {
	Divider string `toml:"divider"`
	Hotkey  string `toml:"hotkey"`
	Name    string `toml:"name"`
	Width   int    `toml:"width"`
}

// Pattern is one prioritized regular expression inside a profile. Lower
// Priority values win where matches overlap.
type Pattern struct {
	Priority int    `toml:"priority"`
	Regex    string `toml:"regex"`
	Style    Style  `toml:"style"`

	compiled *regexp.Regexp
}

// Compiled returns the compiled form of Regex. It is set by Validate, so a
// Pattern taken from a loaded Config always has it.
func (p *Pattern) Compiled() *regexp.Regexp { return p.compiled }

// Profile is one named set of patterns with its own hint alphabet, hotkey
// and colors.
type Profile struct {
	Name     string    `toml:"name"`
	Hotkey   string    `toml:"hotkey"`
	Alphabet string    `toml:"alphabet"`
	Hint     Style     `toml:"hint"`
	Typed    Style     `toml:"typed"`
	Dialog   Dialog    `toml:"dialog"`
	Patterns []Pattern `toml:"patterns"`
}

// HotkeyRune returns the hotkey as a rune. Validate guarantees the field
// holds exactly one.
func (p *Profile) HotkeyRune() rune {
	r, _ := utf8.DecodeRuneInString(p.Hotkey)
	return r
}

// Config is the full pluck configuration.
type Config struct {
	SwitchKey     string    `toml:"switch_key"`
	MaxHintLength int       `toml:"max_hint_length"`
	Profiles      []Profile `toml:"profiles"`
}

// DefaultTOML returns the built-in configuration document verbatim.
func DefaultTOML() string { return defaultTOML }

// DefaultConfig parses the built-in configuration. It panics if the
// embedded document is broken, which only a bad build can cause.
func DefaultConfig() *Config {
	var cfg Config
	if _, err := toml.Decode(defaultTOML, &cfg); err != nil {
		panic(fmt.Sprintf("built-in config: %v", err))
	}
	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("built-in config: %v", err))
	}
	return &cfg
}

// Load reads the configuration at path. With an empty path it searches the
// XDG config directories for pluck/config.toml and falls back to the
// built-in defaults when nothing is found. Nothing is ever written to disk.
func Load(path string) (*Config, error) {
	if path == "" {
		found, err := xdg.SearchConfigFile(configFile)
		if err != nil {
			return DefaultConfig(), nil
		}
		path = found
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, &Error{Path: path, Err: err}
	}
	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, &Error{Path: path, Err: err}
	}
	return &cfg, nil
}

// applyDefaults fills the fields a partial document may leave out.
func applyDefaults(c *Config) {
	if c.SwitchKey == "" {
		c.SwitchKey = DefaultSwitchKey
	}
	if c.MaxHintLength == 0 {
		c.MaxHintLength = defaultMaxHintLength
	}
	for i := range c.Profiles {
		p := &c.Profiles[i]
		if p.Alphabet == "" {
			p.Alphabet = defaultAlphabet
		}
		if p.Dialog.Width < 1 {
			p.Dialog.Width = defaultDialogWidth
		}
	}
}

// Validate checks the configuration and compiles every pattern. It mutates
// the receiver only to store the compiled expressions.
func (c *Config) Validate() error {
	if c.MaxHintLength < 1 {
		return fmt.Errorf("max_hint_length must be at least 1, got %d", c.MaxHintLength)
	}
	if len(c.Profiles) == 0 {
		return fmt.Errorf("at least one profile is required")
	}
	hotkeys := make(map[string]string, len(c.Profiles))
	for i := range c.Profiles {
		p := &c.Profiles[i]
		if p.Name == "" {
			return fmt.Errorf("profile %d: name is required", i)
		}
		if err := p.validate(); err != nil {
			return fmt.Errorf("profile %q: %w", p.Name, err)
		}
		if prev, ok := hotkeys[p.Hotkey]; ok {
			return fmt.Errorf("profiles %q and %q share hotkey %q", prev, p.Name, p.Hotkey)
		}
		hotkeys[p.Hotkey] = p.Name
	}
	return nil
}

func (p *Profile) validate() error {
	if utf8.RuneCountInString(p.Hotkey) != 1 {
		return fmt.Errorf("hotkey must be exactly one character, got %q", p.Hotkey)
	}
	if p.Alphabet == "" {
		return fmt.Errorf("alphabet must not be empty")
	}
	seen := make(map[rune]bool, utf8.RuneCountInString(p.Alphabet))
	for _, r := range p.Alphabet {
		if seen[r] {
			return fmt.Errorf("alphabet repeats %q", r)
		}
		seen[r] = true
	}
	if len(p.Patterns) == 0 {
		return fmt.Errorf("at least one pattern is required")
	}
	for i := range p.Patterns {
		pat := &p.Patterns[i]
		if pat.Regex == "" {
			return fmt.Errorf("pattern %d: regex must not be empty", i)
		}
		re, err := regexp.Compile(pat.Regex)
		if err != nil {
			return fmt.Errorf("pattern %d: %w", i, err)
		}
		pat.compiled = re
	}
	return nil
}
