package doldoc

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"pkt.systems/doldoc/internal/palette"
)

// ThemeFormat selects the encoding of a theme file.
type ThemeFormat string

const (
	ThemeFormatYAML ThemeFormat = "yaml"
	ThemeFormatTOML ThemeFormat = "toml"
)

// themeFile is the on-disk palette description:
//
//	name: amber
//	text: "#FFB000"
//	colors:
//	  RED: "#FF0000"
//	  "14": "#FFFF00"
//
// Colors are keyed by palette name or index; missing ones keep the TempleOS
// value.
type themeFile struct {
	Name   string            `yaml:"name" toml:"name"`
	Text   string            `yaml:"text" toml:"text"`
	Colors map[string]string `yaml:"colors" toml:"colors"`
}

// ThemeFormatFromPath picks a format from the file extension.
func ThemeFormatFromPath(path string) (ThemeFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ThemeFormatYAML, nil
	case ".toml":
		return ThemeFormatTOML, nil
	default:
		return "", fmt.Errorf("theme file: unsupported extension %q (want .yaml, .yml or .toml)", filepath.Ext(path))
	}
}

// LoadThemeFile reads a YAML or TOML palette file.
func LoadThemeFile(path string) (Theme, error) {
	format, err := ThemeFormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("theme file: %w", err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return ParseThemeFile(data, format, name)
}

// ParseThemeFile decodes a palette description. fallbackName is used when
// the file does not name the theme.
func ParseThemeFile(data []byte, format ThemeFormat, fallbackName string) (Theme, error) {
	var tf themeFile
	switch format {
	case ThemeFormatYAML:
		if err := yaml.Unmarshal(data, &tf); err != nil {
			return nil, fmt.Errorf("theme file: yaml: %w", err)
		}
	case ThemeFormatTOML:
		if err := toml.Unmarshal(data, &tf); err != nil {
			return nil, fmt.Errorf("theme file: toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("theme file: unsupported format %q", format)
	}
	hex := palette.TempleOSHex
	for key, value := range tf.Colors {
		c, err := ParseColor(key)
		if err != nil {
			return nil, fmt.Errorf("theme file: %w", err)
		}
		hex[c] = value
	}
	p, err := palette.HexPalette(tf.Text, hex)
	if err != nil {
		return nil, fmt.Errorf("theme file: %w", err)
	}
	name := strings.TrimSpace(tf.Name)
	if name == "" {
		name = fallbackName
	}
	return NewTheme(name, stylesFromPalette(p)), nil
}
