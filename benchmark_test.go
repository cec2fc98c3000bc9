package doldoc

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func sampleDocument(blocks int) string {
	var b strings.Builder
	for i := 0; i < blocks; i++ {
		switch i % 5 {
		case 0:
			b.WriteString("$FG,LTBLUE$")
		case 1:
			b.WriteString(`$TX+B-C,"highlighted",S="x"$`)
		case 2:
			b.WriteString("$FG$")
		case 3:
			b.WriteString(`$FG,C="12"$`)
		default:
			b.WriteString("$TX,A=B,\"c d, e\"$")
		}
		b.WriteString("The quick brown fox jumps over the lazy dog. ")
	}
	return b.String()
}

func BenchmarkLex(b *testing.B) {
	block := `$TX+B-C,"Hello",S="World!",K=V$`
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, _, err := Lex(block); err != nil {
			b.Fatalf("lex: %v", err)
		}
	}
}

func BenchmarkParse(b *testing.B) {
	src := sampleDocument(500)
	b.ReportAllocs()
	b.SetBytes(int64(len(src)))
	for i := 0; i < b.N; i++ {
		if _, err := Parse(src); err != nil {
			b.Fatalf("parse: %v", err)
		}
	}
}

func BenchmarkRenderWrapped(b *testing.B) {
	data := []byte(sampleDocument(500))
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	reader := bytes.NewReader(data)
	var out bytes.Buffer
	out.Grow(len(data) * 2)
	for i := 0; i < b.N; i++ {
		reader.Reset(data)
		out.Reset()
		if err := Render(RenderRequest{
			Reader: reader,
			Writer: &out,
			Width:  80,
			Theme:  DefaultTheme(),
		}); err != nil {
			b.Fatalf("render: %v", err)
		}
	}
}

func BenchmarkHTTPRender(b *testing.B) {
	data := []byte(sampleDocument(200))
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(data)
	}))
	defer srv.Close()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := HTTPRender(context.Background(), HTTPRenderRequest{
			URL:    srv.URL,
			Client: srv.Client(),
			Writer: io.Discard,
			Width:  80,
			Theme:  DefaultTheme(),
		}); err != nil {
			b.Fatalf("http render: %v", err)
		}
	}
}
