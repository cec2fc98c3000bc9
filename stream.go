package doldoc

import (
	"bytes"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"pkt.systems/doldoc/internal/palette"
)

// StreamToken is a text segment with a style applied.
type StreamToken struct {
	Text  string
	Style Style
}

// StreamRenderer buffers styled tokens and writes them word wrapped on Flush.
type StreamRenderer struct {
	w           io.Writer
	width       int
	softWrap    bool
	clearScreen bool
	cleared     bool
	style       string
	buf         bytes.Buffer
}

// NewStreamRenderer creates a streaming renderer. A width of zero disables
// wrapping.
func NewStreamRenderer(w io.Writer, width int, opts ...RenderOption) *StreamRenderer {
	s := &StreamRenderer{}
	s.resetWithConfig(w, width, newRenderConfig(opts))
	return s
}

// Reset clears stream state for reuse with a new writer or width.
func (s *StreamRenderer) Reset(w io.Writer, width int) {
	cfg := renderConfig{softWrap: s.softWrap, clearScreen: s.clearScreen}
	s.resetWithConfig(w, width, cfg)
}

func (s *StreamRenderer) resetWithConfig(w io.Writer, width int, cfg renderConfig) {
	s.w = w
	s.width = width
	s.softWrap = cfg.softWrap
	s.clearScreen = cfg.clearScreen
	s.cleared = false
	s.style = ""
	s.buf.Reset()
}

// Width returns the configured wrap width.
func (s *StreamRenderer) Width() int {
	return s.width
}

// SetWidth updates the wrap width.
func (s *StreamRenderer) SetWidth(width int) {
	s.width = width
}

// WriteToken appends a token. Control runes are dropped.
func (s *StreamRenderer) WriteToken(tok StreamToken) error {
	if tok.Text == "" {
		return nil
	}
	if tok.Style.Prefix != s.style {
		if s.style != "" {
			s.buf.WriteString(palette.Reset)
		}
		s.buf.WriteString(tok.Style.Prefix)
		s.style = tok.Style.Prefix
	}
	for i := 0; i < len(tok.Text); {
		r, size := utf8.DecodeRuneInString(tok.Text[i:])
		i += size
		if r == utf8.RuneError && size == 1 {
			continue
		}
		if r == '\r' || isControlRune(r) {
			continue
		}
		s.buf.WriteRune(r)
	}
	return nil
}

// Clear drops buffered output. With WithClearScreen the flushed output starts
// with a terminal clear sequence.
func (s *StreamRenderer) Clear() error {
	s.buf.Reset()
	s.style = ""
	s.cleared = true
	return nil
}

// Flush wraps the buffered text and writes it out.
func (s *StreamRenderer) Flush() error {
	if s.style != "" {
		s.buf.WriteString(palette.Reset)
		s.style = ""
	}
	out := s.buf.String()
	s.buf.Reset()
	if s.width > 0 && ansi.PrintableRuneWidth(out) > s.width {
		out = wordwrap.String(out, s.width)
		if s.softWrap {
			out = wrap.String(out, s.width)
		}
	}
	if out != "" && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	if s.clearScreen && s.cleared {
		out = palette.ClearScreen + out
	}
	s.cleared = false
	if out == "" {
		return nil
	}
	_, err := io.WriteString(s.w, out)
	return err
}
