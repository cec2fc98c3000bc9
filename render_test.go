package doldoc

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"pkt.systems/doldoc/internal/palette"
)

func renderString(t *testing.T, src string, width int, theme Theme, opts ...RenderOption) string {
	t.Helper()
	var out bytes.Buffer
	err := Render(RenderRequest{
		Reader:  strings.NewReader(src),
		Writer:  &out,
		Width:   width,
		Theme:   theme,
		Options: opts,
	})
	require.NoError(t, err)
	return out.String()
}

func boring() Theme {
	theme, _ := ThemeByName("boring")
	return theme
}

func TestRenderPlainText(t *testing.T) {
	require.Equal(t, "Hello World!\n", renderString(t, "Hello World!", 0, boring()))
	require.Equal(t, "", renderString(t, "", 0, boring()))
}

func TestRenderClearDropsEarlierText(t *testing.T) {
	require.Equal(t, " World\n", renderString(t, "Hello $CL$ World", 0, boring()))
}

func TestRenderClearScreen(t *testing.T) {
	got := renderString(t, "a$CL$b", 0, boring(), WithClearScreen(true))
	require.Equal(t, palette.ClearScreen+"b\n", got)

	got = renderString(t, "ab", 0, boring(), WithClearScreen(true))
	require.Equal(t, "ab\n", got)
}

func TestRenderForegroundStyles(t *testing.T) {
	got := renderString(t, "a$FG,RED$b$FG$c", 0, DefaultTheme())
	require.Equal(t, "a\x1b[31mb\x1b[0mc\n", got)
}

func TestRenderTextCommand(t *testing.T) {
	got := renderString(t, `$TX+B-C,"Hello",S="World!"$ there`, 0, boring())
	require.Equal(t, "Hello there\n", got)
}

func TestRenderWordWrap(t *testing.T) {
	require.Equal(t, "alpha\nbeta\ngamma\n", renderString(t, "alpha beta gamma", 6, boring()))
}

func TestRenderSoftWrapBreaksLongWords(t *testing.T) {
	require.Equal(t, "abcdefghij\n", renderString(t, "abcdefghij", 4, boring()))
	require.Equal(t, "abcd\nefgh\nij\n", renderString(t, "abcdefghij", 4, boring(), WithSoftWrap(true)))
}

func TestRenderDropsControlCharacters(t *testing.T) {
	require.Equal(t, "ab\n", renderString(t, "a\x1bb", 0, boring()))
}

func TestRenderErrors(t *testing.T) {
	var out bytes.Buffer
	err := Render(RenderRequest{Reader: strings.NewReader("$CL"), Writer: &out})
	require.ErrorIs(t, err, ErrUnexpectedEOF)
	require.Zero(t, out.Len())

	err = Render(RenderRequest{Reader: bytes.NewReader([]byte{0xff, 0xfe}), Writer: &out})
	require.True(t, errors.Is(err, ErrInvalidUTF8), "got %v", err)

	err = Render(RenderRequest{Reader: strings.NewReader("$FG,\"mauve\"$x"), Writer: &out})
	require.ErrorIs(t, err, ErrUnknownColor)

	require.Error(t, Render(RenderRequest{Writer: &out}))
	require.Error(t, Render(RenderRequest{Reader: strings.NewReader("x")}))
}

type recordingStream struct {
	tokens  []StreamToken
	clears  int
	flushes int
	width   int
}

func (r *recordingStream) WriteToken(tok StreamToken) error {
	r.tokens = append(r.tokens, tok)
	return nil
}
func (r *recordingStream) Clear() error   { r.clears++; return nil }
func (r *recordingStream) Flush() error   { r.flushes++; return nil }
func (r *recordingStream) Width() int     { return r.width }
func (r *recordingStream) SetWidth(w int) { r.width = w }

func TestWriteDocumentUsesThemeColors(t *testing.T) {
	doc := buildString(t, "x$CL$a$FG,LTGREEN$b")
	stream := &recordingStream{}
	require.NoError(t, WriteDocument(stream, doc, DefaultTheme()))
	require.Equal(t, 1, stream.clears)
	require.Equal(t, 1, stream.flushes)
	styles := DefaultTheme().Styles()
	require.Equal(t, []StreamToken{
		{Text: "a", Style: styles.Text},
		{Text: "b", Style: styles.Colors[ColorLtGreen]},
	}, stream.tokens)
}

func TestStreamRendererReuse(t *testing.T) {
	var first, second bytes.Buffer
	s := NewStreamRenderer(&first, 0)
	require.NoError(t, s.WriteToken(StreamToken{Text: "one", Style: Style{Prefix: "\x1b[31m"}}))
	require.NoError(t, s.Flush())
	require.Equal(t, "\x1b[31mone\x1b[0m\n", first.String())

	s.Reset(&second, 10)
	require.Equal(t, 10, s.Width())
	require.NoError(t, s.WriteToken(StreamToken{Text: "two"}))
	require.NoError(t, s.Flush())
	require.Equal(t, "two\n", second.String())
}
