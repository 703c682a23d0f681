package nav

import (
	"fmt"
	"strings"
)

// Theme is the page colour scheme.
type Theme int

const (
	Light Theme = iota
	Dark
)

func (t Theme) String() string {
	if t == Dark {
		return "dark"
	}
	return "light"
}

// ParseTheme accepts "light" or "dark".
func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	}
	return Light, fmt.Errorf("nav: unknown theme %q", s)
}

// Navbar is the top bar: page title and theme switch.
type Navbar struct {
	Title       string
	ThemeButton string
	theme       Theme
	onTheme     []func(Theme)
}

// NewNavbar returns a navbar starting in theme t.
func NewNavbar(t Theme) *Navbar {
	return &Navbar{Title: "Final Project", ThemeButton: "Theme", theme: t}
}

// Theme returns the active theme.
func (n *Navbar) Theme() Theme {
	return n.theme
}

// SetTheme switches to t and notifies listeners if it changed.
func (n *Navbar) SetTheme(t Theme) {
	if t == n.theme {
		return
	}
	n.theme = t
	for _, fn := range n.onTheme {
		fn(t)
	}
}

// ToggleTheme flips between light and dark and returns the new theme.
func (n *Navbar) ToggleTheme() Theme {
	if n.theme == Dark {
		n.SetTheme(Light)
	} else {
		n.SetTheme(Dark)
	}
	return n.theme
}

// OnThemeChange registers fn to run after each theme switch.
func (n *Navbar) OnThemeChange(fn func(Theme)) {
	n.onTheme = append(n.onTheme, fn)
}
