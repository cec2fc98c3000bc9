package doldoc

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHTTPRender(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/doc":
			_, _ = w.Write([]byte("Hi $FG,RED$there"))
		case "/big":
			_, _ = w.Write([]byte(strings.Repeat("x", 64)))
		case "/bad":
			_, _ = w.Write([]byte("$FG,RED"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	var out bytes.Buffer
	err := HTTPRender(context.Background(), HTTPRenderRequest{
		URL:    srv.URL + "/doc",
		Writer: &out,
		Theme:  boring(),
	})
	if err != nil {
		t.Fatalf("HTTPRender: %v", err)
	}
	if out.String() != "Hi there\n" {
		t.Fatalf("unexpected output %q", out.String())
	}

	if err := HTTPRender(context.Background(), HTTPRenderRequest{URL: srv.URL + "/missing", Writer: &out}); err == nil {
		t.Fatalf("expected error for 404")
	}
	if err := HTTPRender(context.Background(), HTTPRenderRequest{URL: srv.URL + "/big", Writer: &out, MaxBytes: 16}); err == nil {
		t.Fatalf("expected error for oversized body")
	}
	if _, err := HTTPParse(context.Background(), nil, srv.URL+"/bad", 0); err == nil {
		t.Fatalf("expected parse error")
	}
	if err := HTTPRender(context.Background(), HTTPRenderRequest{URL: "ftp://example.com/doc", Writer: &out}); err == nil {
		t.Fatalf("expected error for unsupported scheme")
	}
	if err := HTTPRender(context.Background(), HTTPRenderRequest{Writer: &out}); err == nil {
		t.Fatalf("expected error for missing URL")
	}
}
