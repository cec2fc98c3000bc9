// Package palette holds ANSI escape prefixes used by the built-in themes.
package palette

import (
	"fmt"
	"strconv"
	"strings"
)

// SGR prefixes.
const (
	Reset = "\x1b[0m"

	// ClearScreen clears the terminal and homes the cursor.
	ClearScreen = "\x1b[H\x1b[2J"
)

// Palette is a text prefix plus one prefix per palette color, in the order
// BLACK BLUE GREEN CYAN RED PURPLE BROWN LTGRAY DKGRAY LTBLUE LTGREEN LTCYAN
// LTRED LTPURPLE YELLOW WHITE.
type Palette struct {
	Text   string
	Colors [16]string
}

// TempleOSHex is the canonical 16-color TempleOS palette.
var TempleOSHex = [16]string{
	"#000000", "#0000AA", "#00AA00", "#00AAAA", "#AA0000", "#AA00AA", "#AA5500", "#AAAAAA",
	"#555555", "#5555FF", "#55FF55", "#55FFFF", "#FF5555", "#FF55FF", "#FFFF55", "#FFFFFF",
}

// PaletteDefault uses the terminal's own 16 colors.
var PaletteDefault = Palette{
	Text: "",
	Colors: [16]string{
		sgr(30), sgr(34), sgr(32), sgr(36), sgr(31), sgr(35), sgr(33), sgr(37),
		sgr(90), sgr(94), sgr(92), sgr(96), sgr(91), sgr(95), sgr(93), sgr(97),
	},
}

// PaletteTempleOS renders the TempleOS colors in truecolor.
var PaletteTempleOS = mustHexPalette("", TempleOSHex)

func sgr(code int) string {
	return "\x1b[" + strconv.Itoa(code) + "m"
}

// FromHex converts #RRGGBB (or RRGGBB) to a truecolor foreground prefix.
func FromHex(hex string) (string, error) {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(h) != 6 {
		return "", fmt.Errorf("palette: invalid hex color %q", hex)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return "", fmt.Errorf("palette: invalid hex color %q: %w", hex, err)
	}
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", v>>16&0xff, v>>8&0xff, v&0xff), nil
}

// HexPalette builds a truecolor palette. An empty text color leaves the
// terminal default.
func HexPalette(text string, colors [16]string) (Palette, error) {
	var p Palette
	if text != "" {
		prefix, err := FromHex(text)
		if err != nil {
			return Palette{}, err
		}
		p.Text = prefix
	}
	for i, c := range colors {
		prefix, err := FromHex(c)
		if err != nil {
			return Palette{}, err
		}
		p.Colors[i] = prefix
	}
	return p, nil
}

func mustHexPalette(text string, colors [16]string) Palette {
	p, err := HexPalette(text, colors)
	if err != nil {
		panic(err)
	}
	return p
}
