package app

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"geometry-explorer/internal/config"
	"geometry-explorer/internal/nav"
)

// registerCommands wires the console to the same handlers the widgets use.
func (a *App) registerCommands() {
	r := a.registry
	r.Register("shape", "<cube|sphere|cylinder>", nil, func(args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("usage: shape <cube|sphere|cylinder>")
		}
		return a.apply(a.panel.SelectShape(args[0]))
	})
	r.Register("color", "<#rrggbb>", nil, func(args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("usage: color <#rrggbb>")
		}
		return a.apply(a.panel.PickColor(args[0]))
	})
	r.Register("scale", "<0.1..3.0>", nil, func(args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("usage: scale <0.1..3.0>")
		}
		v, err := strconv.ParseFloat(args[0], 32)
		if err != nil {
			return fmt.Errorf("scale: %w", err)
		}
		if _, err := a.panel.SlideScale(float32(v)); err != nil {
			return a.apply(err)
		}
		a.log.Log(a.panel.ScaleLabel())
		return a.apply(nil)
	})
	r.Register("rotate", "[on|off|toggle]", nil, func(args []string) error {
		want, err := parseSwitch(args, a.panel.RotationPressed())
		if err != nil {
			return fmt.Errorf("rotate: %w", err)
		}
		if want == a.panel.RotationPressed() {
			return nil
		}
		return a.apply(a.panel.ToggleRotation())
	})
	r.Register("route", "<path>", nil, func(args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("usage: route <path>")
		}
		return a.apply(a.router.Navigate(args[0]))
	})
	r.Register("theme", "[light|dark|toggle]", nil, func(args []string) error {
		if len(args) == 0 || args[0] == "toggle" {
			a.navbar.ToggleTheme()
			return a.apply(nil)
		}
		t, err := nav.ParseTheme(args[0])
		if err != nil {
			return err
		}
		a.navbar.SetTheme(t)
		return a.apply(nil)
	})
	r.Register("fps", "[on|off|toggle]", nil, func(args []string) error {
		v, err := parseSwitch(args, a.debug.ShowFPS)
		a.debug.ShowFPS = v
		return err
	})
	r.Register("stats", "[on|off|toggle]", nil, func(args []string) error {
		v, err := parseSwitch(args, a.debug.ShowStats)
		a.debug.ShowStats = v
		return err
	})
	r.Register("mem", "[on|off|toggle]", nil, func(args []string) error {
		v, err := parseSwitch(args, a.debug.ShowMemAlloc)
		a.debug.ShowMemAlloc = v
		return err
	})
	r.Register("grid", "[on|off|toggle]", nil, func(args []string) error {
		v, err := parseSwitch(args, a.prefs.ShowGrid)
		if err != nil {
			return err
		}
		a.prefs.ShowGrid = v
		if a.opts.SetGrid != nil {
			a.opts.SetGrid(v)
		}
		return nil
	})
	r.Register("font", "<family>", nil, func(args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("usage: font <family>")
		}
		return a.fetchFont(strings.Join(args, " "))
	})
	saveFlags := flag.NewFlagSet("save", flag.ContinueOnError)
	savePath := saveFlags.String("path", "", "file to write instead of the config path")
	r.Register("save", "[-path file]", saveFlags, func([]string) error {
		path := a.opts.ConfigPath
		if *savePath != "" {
			path = *savePath
			*savePath = ""
		}
		if path == "" {
			return fmt.Errorf("save: no config path")
		}
		if err := config.Save(path, a.Prefs()); err != nil {
			return err
		}
		a.log.Log("saved " + path)
		return nil
	})
	r.Register("status", "", nil, func([]string) error {
		st := a.panel.State()
		line := fmt.Sprintf("route=%s shape=%s color=%s scale=%.1f rotation=%s",
			a.router.Current().Path, st.Shape, st.Color, st.Scale, st.RotationMode())
		if label := a.AccessibleLabel(); label != "" {
			line += " | " + label
		}
		a.log.Log(line)
		return nil
	})
	r.Register("help", "", nil, func([]string) error {
		for _, line := range r.Help() {
			a.log.Log(line)
		}
		return nil
	})
}

// apply marks the layout stale after a handler ran.
func (a *App) apply(err error) error {
	a.dirty = true
	return err
}

// parseSwitch reads on/off/toggle; no argument toggles cur.
func parseSwitch(args []string, cur bool) (bool, error) {
	if len(args) == 0 {
		return !cur, nil
	}
	switch strings.ToLower(args[0]) {
	case "on", "true", "1":
		return true, nil
	case "off", "false", "0":
		return false, nil
	case "toggle":
		return !cur, nil
	}
	return cur, fmt.Errorf("expected on, off or toggle, got %q", args[0])
}
