package doldoc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const yamlTheme = `
name: amber
text: "#FFB000"
colors:
  RED: "#FF0000"
  "14": "#FFFF00"
`

const tomlTheme = `
text = "#FFB000"

[colors]
red = "#FF0000"
`

func TestParseThemeFileYAML(t *testing.T) {
	theme, err := ParseThemeFile([]byte(yamlTheme), ThemeFormatYAML, "fallback")
	require.NoError(t, err)
	require.Equal(t, "amber", theme.Name())
	styles := theme.Styles()
	require.Equal(t, "\x1b[38;2;255;176;0m", styles.Text.Prefix)
	require.Equal(t, "\x1b[38;2;255;0;0m", styles.Colors[ColorRed].Prefix)
	require.Equal(t, "\x1b[38;2;255;255;0m", styles.Colors[ColorYellow].Prefix)
	require.Equal(t, "\x1b[38;2;0;0;170m", styles.Colors[ColorBlue].Prefix)
}

func TestParseThemeFileTOML(t *testing.T) {
	theme, err := ParseThemeFile([]byte(tomlTheme), ThemeFormatTOML, "fallback")
	require.NoError(t, err)
	require.Equal(t, "fallback", theme.Name())
	require.Equal(t, "\x1b[38;2;255;0;0m", theme.Styles().Colors[ColorRed].Prefix)
}

func TestParseThemeFileErrors(t *testing.T) {
	_, err := ParseThemeFile([]byte("colors:\n  PINK: \"#FF00FF\"\n"), ThemeFormatYAML, "x")
	require.ErrorIs(t, err, ErrUnknownColor)

	_, err = ParseThemeFile([]byte("colors:\n  RED: \"#GG0000\"\n"), ThemeFormatYAML, "x")
	require.Error(t, err)

	_, err = ParseThemeFile([]byte("colors = ["), ThemeFormatTOML, "x")
	require.Error(t, err)

	_, err = ParseThemeFile(nil, ThemeFormat("ini"), "x")
	require.Error(t, err)
}

func TestLoadThemeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "night.yml")
	require.NoError(t, os.WriteFile(path, []byte("colors:\n  BLUE: \"#000080\"\n"), 0o644))

	theme, err := LoadThemeFile(path)
	require.NoError(t, err)
	require.Equal(t, "night", theme.Name())
	require.Equal(t, "\x1b[38;2;0;0;128m", theme.Styles().Colors[ColorBlue].Prefix)

	_, err = LoadThemeFile(filepath.Join(dir, "theme.json"))
	require.Error(t, err)

	_, err = LoadThemeFile(filepath.Join(dir, "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
