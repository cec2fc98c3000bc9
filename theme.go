package doldoc

import (
	"maps"
	"slices"
	"strings"

	"pkt.systems/doldoc/internal/palette"
)

// Style is the ANSI sequence written before a run.
type Style struct {
	Prefix string
}

// Styles maps each palette color to a Style. Text is used for runs drawn in
// ColorDefault.
type Styles struct {
	Text   Style
	Colors [NumColors]Style
}

// Color returns the style for c, falling back to Text for ColorDefault.
func (s Styles) Color(c Color) Style {
	if c < 0 || int(c) >= NumColors {
		return s.Text
	}
	return s.Colors[c]
}

// Theme is a named set of color styles.
type Theme interface {
	Name() string
	Styles() Styles
}

type namedStyles struct {
	name   string
	styles Styles
}

func (n namedStyles) Name() string   { return n.name }
func (n namedStyles) Styles() Styles { return n.styles }

// NewTheme wraps styles under a name.
func NewTheme(name string, styles Styles) Theme {
	return namedStyles{name: name, styles: styles}
}

func stylesFromPalette(p palette.Palette) Styles {
	s := Styles{Text: Style{Prefix: p.Text}}
	for i, prefix := range p.Colors {
		s.Colors[i] = Style{Prefix: prefix}
	}
	return s
}

const defaultThemeName = "default"

var builtinThemes = map[string]Theme{
	defaultThemeName: NewTheme(defaultThemeName, stylesFromPalette(palette.PaletteDefault)),
	"templeos":       NewTheme("templeos", stylesFromPalette(palette.PaletteTempleOS)),
	"boring":         NewTheme("boring", Styles{}),
}

// AvailableThemes lists the built-in theme names in sorted order.
func AvailableThemes() []string {
	return slices.Sorted(maps.Keys(builtinThemes))
}

// ThemeByName looks up a built-in theme, ignoring case and surrounding
// space. An empty name selects the default theme.
func ThemeByName(name string) (Theme, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = defaultThemeName
	}
	t, ok := builtinThemes[key]
	return t, ok
}

// DefaultTheme is the 16-color SGR theme.
func DefaultTheme() Theme {
	return builtinThemes[defaultThemeName]
}
