package config

import (
	"os"
	"path/filepath"
	"testing"

	"geometry-explorer/internal/nav"
	"geometry-explorer/internal/shapes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "explorer.yaml")
	p := Default()
	p.Viewer.Shape = "sphere"
	p.Viewer.Color = "#FF0000"
	p.Viewer.Scale = 2.5
	p.Theme = "dark"
	p.ShowFPS = true
	require.NoError(t, Save(path, p))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sphere", got.Viewer.Shape)
	assert.Equal(t, "#ff0000", got.Viewer.Color)
	assert.InDelta(t, 2.5, got.Viewer.Scale, 1e-6)
	assert.Equal(t, nav.Dark, got.ThemeValue())
	assert.True(t, got.ShowFPS)
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "explorer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("show_grid: true\nviewer:\n  shape: cylinder\n"), 0644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.True(t, p.ShowGrid)
	assert.Equal(t, "cylinder", p.Viewer.Shape)
	assert.Equal(t, int32(1280), p.Window.Width)
	assert.Equal(t, "#22c55e", p.Viewer.Color)
}

func TestInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "explorer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: [unclosed"), 0644))

	p, err := Load(path)
	assert.Error(t, err)
	assert.Equal(t, Default(), p)
}

func TestValidate(t *testing.T) {
	p := Default()
	p.Viewer.Shape = "torus"
	p.Viewer.Color = "green"
	p.Viewer.Scale = 9
	p.Theme = "sepia"
	p.Window.Width = -1

	v := p.Validate()
	assert.Equal(t, "cube", v.Viewer.Shape)
	assert.Equal(t, "#22c55e", v.Viewer.Color)
	assert.InDelta(t, 3.0, v.Viewer.Scale, 1e-6)
	assert.Equal(t, "light", v.Theme)
	assert.Equal(t, int32(1280), v.Window.Width)

	st := v.State()
	assert.Equal(t, shapes.Cube, st.Shape)
	assert.True(t, st.AutoRotate)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("EXPLORER_THEME", "DARK")
	t.Setenv("EXPLORER_SHOW_FPS", "1")
	t.Setenv("EXPLORER_CONFIG", "")

	p := Default().ApplyEnv()
	assert.Equal(t, "dark", p.Theme)
	assert.True(t, p.ShowFPS)
	assert.Equal(t, DefaultPath, Path())

	t.Setenv("EXPLORER_THEME", "neon")
	assert.Equal(t, "light", Default().ApplyEnv().Theme)
}
