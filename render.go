package doldoc

import (
	"fmt"
	"io"
	"sync"
)

var streamRendererPool = sync.Pool{
	New: func() any {
		return &StreamRenderer{}
	},
}

// RenderRequest configures Render.
type RenderRequest struct {
	Reader  io.Reader
	Writer  io.Writer
	Width   int
	Theme   Theme
	Options []RenderOption
}

// Render parses a document from Reader and writes it as ANSI text.
func Render(req RenderRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("render: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("render: writer is nil")
	}
	entries, err := ParseReader(req.Reader)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return RenderEntries(req.Writer, entries, req.Width, req.Theme, req.Options...)
}

// RenderEntries folds entries into a Document and writes it as ANSI text.
func RenderEntries(w io.Writer, entries []Entry, width int, theme Theme, opts ...RenderOption) error {
	if w == nil {
		return fmt.Errorf("render: writer is nil")
	}
	doc, err := Build(entries)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	stream := streamRendererPool.Get().(*StreamRenderer)
	stream.resetWithConfig(w, width, newRenderConfig(opts))
	err = WriteDocument(stream, doc, theme)
	stream.Reset(io.Discard, 0)
	streamRendererPool.Put(stream)
	return err
}

// WriteDocument writes the runs of doc to stream and flushes it.
func WriteDocument(stream Stream, doc *Document, theme Theme) error {
	if stream == nil {
		return fmt.Errorf("render: stream is nil")
	}
	if theme == nil {
		theme = DefaultTheme()
	}
	styles := theme.Styles()
	if doc.Clears > 0 {
		if err := stream.Clear(); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	}
	for _, run := range doc.Runs {
		tok := StreamToken{Text: run.Text, Style: styles.Color(run.Color)}
		if err := stream.WriteToken(tok); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	}
	if err := stream.Flush(); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
