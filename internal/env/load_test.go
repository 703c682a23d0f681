package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSetsVariables(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "# explorer\n\nEXPLORER_THEME = dark\nEXPLORER_CONFIG=\"custom/explorer.yaml\"\nbroken line\n=novalue\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Setenv(Theme, "")
	t.Setenv(ConfigPath, "")

	require.NoError(t, Load(path))
	assert.Equal(t, "dark", os.Getenv(Theme))
	assert.Equal(t, "custom/explorer.yaml", os.Getenv(ConfigPath))
}

func TestLoadMissingFile(t *testing.T) {
	assert.NoError(t, Load(filepath.Join(t.TempDir(), "missing.env")))
}

func TestString(t *testing.T) {
	t.Setenv(Theme, "  ")
	assert.Equal(t, "light", String(Theme, "light"))
	t.Setenv(Theme, " dark ")
	assert.Equal(t, "dark", String(Theme, "light"))
}

func TestBool(t *testing.T) {
	t.Setenv(ShowFPS, "yes")
	assert.True(t, Bool(ShowFPS, false))
	t.Setenv(ShowFPS, "off")
	assert.False(t, Bool(ShowFPS, true))
	t.Setenv(ShowFPS, "maybe")
	assert.True(t, Bool(ShowFPS, true))
}
