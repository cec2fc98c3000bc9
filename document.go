package doldoc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownColor reports a $FG$ argument that names no palette color.
var ErrUnknownColor = errors.New("unknown color")

// Color is an index into the 16-color palette. ColorDefault means no
// foreground override.
type Color int8

// ColorDefault selects the theme's text style.
const ColorDefault Color = -1

// Palette colors, in palette index order.
const (
	ColorBlack Color = iota
	ColorBlue
	ColorGreen
	ColorCyan
	ColorRed
	ColorPurple
	ColorBrown
	ColorLtGray
	ColorDkGray
	ColorLtBlue
	ColorLtGreen
	ColorLtCyan
	ColorLtRed
	ColorLtPurple
	ColorYellow
	ColorWhite
)

// NumColors is the size of the palette.
const NumColors = 16

var colorNames = [NumColors]string{
	"BLACK", "BLUE", "GREEN", "CYAN", "RED", "PURPLE", "BROWN", "LTGRAY",
	"DKGRAY", "LTBLUE", "LTGREEN", "LTCYAN", "LTRED", "LTPURPLE", "YELLOW", "WHITE",
}

func (c Color) String() string {
	if c < 0 || int(c) >= NumColors {
		return "DEFAULT"
	}
	return colorNames[c]
}

// ColorNames returns the palette color names in index order.
func ColorNames() []string {
	names := make([]string, NumColors)
	copy(names, colorNames[:])
	return names
}

// ParseColor accepts a palette name (case-insensitive) or an index 0-15.
func ParseColor(s string) (Color, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range colorNames {
		if n == name {
			return Color(i), nil
		}
	}
	if n, err := strconv.Atoi(name); err == nil && n >= 0 && n < NumColors {
		return Color(n), nil
	}
	return ColorDefault, fmt.Errorf("%w %q", ErrUnknownColor, s)
}

// Run is a piece of text drawn in one color.
type Run struct {
	Text  string
	Color Color
}

// Document folds an entry sequence into display state.
type Document struct {
	Runs []Run
	// Clears counts the $CL$ entries applied so far.
	Clears int
	fg     Color
}

// NewDocument returns an empty document with the default foreground.
func NewDocument() *Document {
	return &Document{fg: ColorDefault}
}

// Build folds entries into a new document.
func Build(entries []Entry) (*Document, error) {
	d := NewDocument()
	for _, e := range entries {
		if err := d.Apply(e); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Foreground returns the active foreground color.
func (d *Document) Foreground() Color {
	return d.fg
}

// Apply updates the document with one entry.
func (d *Document) Apply(e Entry) error {
	switch v := e.(type) {
	case Clear:
		d.Runs = d.Runs[:0]
		d.fg = ColorDefault
		d.Clears++
	case Foreground:
		name, ok := v.Args.Positional(0)
		if !ok {
			name, ok = v.Args.Lookup("C")
		}
		if !ok {
			d.fg = ColorDefault
			return nil
		}
		c, err := ParseColor(name)
		if err != nil {
			return fmt.Errorf("document: offset %d: %w", v.Span.Start, err)
		}
		d.fg = c
	case Text:
		d.appendText(v.Content())
	default:
		return fmt.Errorf("document: unsupported entry %T", e)
	}
	return nil
}

func (d *Document) appendText(text string) {
	if text == "" {
		return
	}
	if n := len(d.Runs); n > 0 && d.Runs[n-1].Color == d.fg {
		d.Runs[n-1].Text += text
		return
	}
	d.Runs = append(d.Runs, Run{Text: text, Color: d.fg})
}

// String returns the document text without colors.
func (d *Document) String() string {
	var b strings.Builder
	for _, r := range d.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}
