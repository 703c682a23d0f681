package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"geometry-explorer/internal/env"
	"geometry-explorer/internal/nav"
	"geometry-explorer/internal/panel"
	"geometry-explorer/internal/scene"
	"geometry-explorer/internal/shapes"
	"geometry-explorer/internal/viewer"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the preferences file, relative to the process working directory.
const DefaultPath = "config/explorer.yaml"

// Window holds the startup window settings.
type Window struct {
	Width      int32  `yaml:"width"`
	Height     int32  `yaml:"height"`
	Title      string `yaml:"title"`
	Fullscreen bool   `yaml:"fullscreen"`
	TargetFPS  int32  `yaml:"target_fps"`
}

// Viewer holds the initial control panel state.
type Viewer struct {
	Shape      string  `yaml:"shape"`
	Color      string  `yaml:"color"`
	Scale      float32 `yaml:"scale"`
	AutoRotate bool    `yaml:"auto_rotate"`
}

// Prefs is everything persisted across runs.
type Prefs struct {
	Window   Window `yaml:"window"`
	Viewer   Viewer `yaml:"viewer"`
	Theme    string `yaml:"theme"`
	ShowFPS  bool   `yaml:"show_fps"`
	ShowGrid bool   `yaml:"show_grid"`
	LogFile  string `yaml:"log_file"`
	Font     string `yaml:"font,omitempty"`
}

// Default returns a 1280x720 light window showing a rotating green cube.
func Default() Prefs {
	st := viewer.DefaultState()
	return Prefs{
		Window: Window{
			Width:     1280,
			Height:    720,
			Title:     "Final Project",
			TargetFPS: 60,
		},
		Viewer: Viewer{
			Shape:      st.Shape.String(),
			Color:      st.Color,
			Scale:      st.Scale,
			AutoRotate: st.AutoRotate,
		},
		Theme:   nav.Light.String(),
		LogFile: "logs/explorer.txt",
	}
}

// Load reads preferences from path. A missing file yields Default() with no error; a file
// that does not parse yields Default() and the parse error. Loaded values are validated.
func Load(path string) (Prefs, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("config: read %s: %w", path, err)
	}
	p := Default()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	return p.Validate(), nil
}

// Save writes p to path as YAML, creating the directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Validate returns p with out-of-range values replaced: scale is snapped into the slider
// range, unknown shapes, colours and themes fall back to defaults.
func (p Prefs) Validate() Prefs {
	def := Default()
	if kind, err := shapes.ParseKind(p.Viewer.Shape); err != nil {
		p.Viewer.Shape = def.Viewer.Shape
	} else {
		p.Viewer.Shape = kind.String()
	}
	if c, err := scene.ParseHex(p.Viewer.Color); err != nil {
		p.Viewer.Color = def.Viewer.Color
	} else {
		p.Viewer.Color = scene.Hex(c)
	}
	p.Viewer.Scale = panel.SnapScale(p.Viewer.Scale)
	if th, err := nav.ParseTheme(p.Theme); err != nil {
		p.Theme = def.Theme
	} else {
		p.Theme = th.String()
	}
	if p.Window.Width <= 0 {
		p.Window.Width = def.Window.Width
	}
	if p.Window.Height <= 0 {
		p.Window.Height = def.Window.Height
	}
	if p.Window.Title == "" {
		p.Window.Title = def.Window.Title
	}
	if p.Window.TargetFPS <= 0 {
		p.Window.TargetFPS = def.Window.TargetFPS
	}
	return p
}

// State converts the viewer section into a viewer.State. Call on validated prefs.
func (p Prefs) State() viewer.State {
	kind, _ := shapes.ParseKind(p.Viewer.Shape)
	return viewer.State{
		Shape:      kind,
		Color:      p.Viewer.Color,
		Scale:      p.Viewer.Scale,
		AutoRotate: p.Viewer.AutoRotate,
	}
}

// ThemeValue returns the parsed theme, light if unset.
func (p Prefs) ThemeValue() nav.Theme {
	th, _ := nav.ParseTheme(p.Theme)
	return th
}

// ApplyEnv returns p with EXPLORER_THEME and EXPLORER_SHOW_FPS applied on top.
func (p Prefs) ApplyEnv() Prefs {
	if th, err := nav.ParseTheme(env.String(env.Theme, p.Theme)); err == nil {
		p.Theme = th.String()
	}
	p.ShowFPS = env.Bool(env.ShowFPS, p.ShowFPS)
	return p
}

// Path returns EXPLORER_CONFIG if set, else DefaultPath.
func Path() string {
	return env.String(env.ConfigPath, DefaultPath)
}
