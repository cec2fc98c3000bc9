// Package doldoc parses DolDoc-style inline markup and renders it to ANSI.
//
// A document is plain text interleaved with command blocks of the form
//
//	$CODE+FLAG-FLAG,VALUE,KEY=VALUE,KEY="quoted value"$
//
// Parse turns a string into an ordered slice of entries: Text for plain
// runs and $TX$, Clear for $CL$ and Foreground for $FG$. Parsing is pure and
// fails fast; the first malformed or unknown block aborts with a *ParseError
// that wraps the lexer, grammar or resolver error.
//
// Every '$' opens a command block. There is no escape for a literal dollar
// sign, so "$$" is an error rather than text.
//
// Example:
//
//	entries, err := doldoc.Parse(`Hello $FG,RED$world$FG$!`)
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = doldoc.RenderEntries(os.Stdout, entries, 80, doldoc.DefaultTheme())
//
// Document folds entries into colored runs, and Render/RenderEntries write
// those runs through a StreamRenderer with word wrapping.
package doldoc
