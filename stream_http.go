package doldoc

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// DefaultHTTPMaxBytes caps the size of a document fetched by HTTPRender.
const DefaultHTTPMaxBytes = 8 << 20

// HTTPRenderRequest configures HTTPRender.
type HTTPRenderRequest struct {
	URL    string
	Client *http.Client
	Writer io.Writer
	Width  int
	Theme  Theme
	// MaxBytes limits the response body; zero means DefaultHTTPMaxBytes.
	MaxBytes int64
	Options  []RenderOption
}

// HTTPRender fetches a document over HTTP(S) and renders it.
func HTTPRender(ctx context.Context, req HTTPRenderRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("stream http: Writer is nil")
	}
	entries, err := HTTPParse(ctx, req.Client, req.URL, req.MaxBytes)
	if err != nil {
		return err
	}
	return RenderEntries(req.Writer, entries, req.Width, req.Theme, req.Options...)
}

// HTTPParse fetches a document over HTTP(S) and parses it.
func HTTPParse(ctx context.Context, client *http.Client, url string, maxBytes int64) ([]Entry, error) {
	if url == "" {
		return nil, fmt.Errorf("stream http: URL is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if client == nil {
		client = http.DefaultClient
	}
	if maxBytes <= 0 {
		maxBytes = DefaultHTTPMaxBytes
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("stream http: build request: %w", err)
	}
	if httpReq.URL.Scheme != "http" && httpReq.URL.Scheme != "https" {
		return nil, fmt.Errorf("stream http: unsupported scheme %q", httpReq.URL.Scheme)
	}
	httpReq.Header.Set("Accept", "text/plain")
	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("stream http: request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("stream http: status %s", resp.Status)
	}
	body := io.LimitReader(resp.Body, maxBytes+1)
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("stream http: read: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("stream http: body exceeds %d bytes", maxBytes)
	}
	if err := ValidateInput(data); err != nil {
		return nil, fmt.Errorf("stream http: %w", err)
	}
	return Parse(string(data))
}
