package doldoc

import (
	"bytes"
	"strings"
	"testing"
)

func TestRenderWrappedAllocations(t *testing.T) {
	const blocks = 200
	src := sampleDocument(blocks)
	allocs := testing.AllocsPerRun(50, func() {
		var out bytes.Buffer
		_ = Render(RenderRequest{
			Reader: strings.NewReader(src),
			Writer: &out,
			Width:  80,
			Theme:  DefaultTheme(),
		})
	})
	if perEntry := allocs / (2 * blocks); perEntry > 64 {
		t.Fatalf("too many allocations per entry: got %.2f (%.0f total)", perEntry, allocs)
	}
}
