package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var inputClient = &http.Client{Timeout: 30 * time.Second}

// lazyInput opens its source on first Read and closes it at EOF, so only one
// input is open at a time.
type lazyInput struct {
	name string
	open func() (io.ReadCloser, error)
	rc   io.ReadCloser
	done bool
}

func (l *lazyInput) Read(p []byte) (int, error) {
	if l.done {
		return 0, io.EOF
	}
	if l.rc == nil {
		rc, err := l.open()
		if err != nil {
			return 0, fmt.Errorf("%s: %w", l.name, err)
		}
		l.rc = rc
	}
	n, err := l.rc.Read(p)
	if errors.Is(err, io.EOF) {
		l.done = true
		cerr := l.rc.Close()
		l.rc = nil
		if cerr != nil && n == 0 {
			return 0, cerr
		}
	}
	return n, err
}

func (l *lazyInput) Close() error {
	l.done = true
	if l.rc == nil {
		return nil
	}
	err := l.rc.Close()
	l.rc = nil
	return err
}

type inputSet []*lazyInput

func (s inputSet) Close() error {
	var errs []error
	for _, in := range s {
		errs = append(errs, in.Close())
	}
	return errors.Join(errs...)
}

// openInputs concatenates files, file:// and http(s):// URLs, or stdin when
// args is empty.
func openInputs(args []string) (io.Reader, io.Closer, error) {
	if len(args) == 0 {
		return os.Stdin, nil, nil
	}
	set := make(inputSet, 0, len(args))
	readers := make([]io.Reader, 0, len(args))
	for _, raw := range args {
		in, err := newLazyInput(raw)
		if err != nil {
			return nil, nil, err
		}
		set = append(set, in)
		readers = append(readers, in)
	}
	return io.MultiReader(readers...), set, nil
}

func newLazyInput(raw string) (*lazyInput, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errors.New("empty input argument")
	}
	in := &lazyInput{name: raw}
	switch {
	case isHTTPURL(raw):
		in.open = func() (io.ReadCloser, error) { return openURL(raw) }
	default:
		path := raw
		if p, ok := fileURLPath(raw); ok {
			path = p
		}
		in.open = func() (io.ReadCloser, error) { return os.Open(normalizePath(path)) }
	}
	return in, nil
}

func fileURLPath(raw string) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil || !strings.EqualFold(u.Scheme, "file") {
		return "", false
	}
	path := u.Path
	if path == "" {
		path = u.Host
	}
	if unescaped, err := url.PathUnescape(path); err == nil {
		path = unescaped
	}
	return path, true
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return true
	}
	return false
}

func openURL(raw string) (io.ReadCloser, error) {
	req, err := http.NewRequest(http.MethodGet, raw, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/plain")
	resp, err := inputClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode/100 != 2 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return resp.Body, nil
}

// createOutput opens path for writing, creating parent directories. An empty
// path means stdout.
func createOutput(path string) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return os.Stdout, nil, nil
	}
	path = normalizePath(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

// normalizePath expands a leading ~ and makes path absolute.
func normalizePath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
