package palette

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemePalette(t *testing.T) {
	p := DefaultTheme().Palette()

	assert.Equal(t, Color("#2e7d32"), p.Success(Main))
	assert.Equal(t, Color("#4caf50"), p.Success(Light))
	assert.Equal(t, Color("#e65100"), p.Warning(Dark))
	assert.Equal(t, Color("#d32f2f"), p.Error(Main))
	assert.Equal(t, Color("#03a9f4"), p.Info(Light))
	assert.Equal(t, Color("#7b1fa2"), p.Secondary(Dark))
	assert.Equal(t, Color("rgba(255, 255, 255, 0.5)"), p.Disabled())
}

func TestDecodeThemeOverridesDefaults(t *testing.T) {
	theme, err := DecodeTheme(strings.NewReader(`
success:
  main: "#00ff00"
text:
  disabled: "#777777"
`))
	require.NoError(t, err)

	p := theme.Palette()
	assert.Equal(t, Color("#00ff00"), p.Success(Main))
	assert.Equal(t, Color("#4caf50"), p.Success(Light))
	assert.Equal(t, Color("#777777"), p.Disabled())
	assert.Equal(t, Color("#d32f2f"), p.Error(Main))
}

func TestDecodeThemeEmpty(t *testing.T) {
	theme, err := DecodeTheme(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultTheme(), theme)
}

func TestDecodeThemeInvalid(t *testing.T) {
	_, err := DecodeTheme(strings.NewReader("success: [1, 2"))
	assert.Error(t, err)
}

func TestLoadTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte("info:\n  light: \"#abcdef\"\n"), 0644))

	theme, err := LoadTheme(path)
	require.NoError(t, err)
	assert.Equal(t, Color("#abcdef"), theme.Palette().Info(Light))

	_, err = LoadTheme(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
