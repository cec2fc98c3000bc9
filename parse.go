package doldoc

import (
	"fmt"
	"io"
	"strings"
)

// Parse splits input into text runs and command blocks and returns the
// resulting entries in input order. Every '$' opens a command block; there is
// no escape for a literal delimiter. The first error aborts the parse and no
// entries are returned with it.
func Parse(input string) ([]Entry, error) {
	entries := make([]Entry, 0, 8)
	pos := 0
	for pos < len(input) {
		if input[pos] != Delimiter {
			end := strings.IndexByte(input[pos:], Delimiter)
			if end < 0 {
				end = len(input)
			} else {
				end += pos
			}
			run := input[pos:end]
			entries = append(entries, Text{
				base:    base{Span: Span{Start: pos, End: end}, Source: run},
				Literal: run,
				Plain:   true,
			})
			pos = end
			continue
		}
		closing := strings.IndexByte(input[pos+1:], Delimiter)
		if closing < 0 {
			return nil, &ParseError{Offset: pos, Block: input[pos:], Err: ErrUnexpectedEOF}
		}
		end := pos + 1 + closing + 1
		block := input[pos:end]
		entry, err := parseBlock(block, Span{Start: pos, End: end})
		if err != nil {
			return nil, &ParseError{Offset: pos, Block: block, Err: err}
		}
		entries = append(entries, entry)
		pos = end
	}
	return entries, nil
}

func parseBlock(block string, span Span) (Entry, error) {
	cmd, err := ParseCommand(block)
	if err != nil {
		return nil, err
	}
	return resolve(cmd, span, block)
}

// ParseReader reads all of r, rejects invalid UTF-8 or binary input and
// parses the result.
func ParseReader(r io.Reader) ([]Entry, error) {
	if r == nil {
		return nil, fmt.Errorf("parse: reader is nil")
	}
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("parse: read: %w", err)
	}
	if err := ValidateInput(src); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return Parse(string(src))
}

// Source concatenates the raw input of entries. For the output of Parse this
// reproduces the parsed input.
func Source(entries []Entry) string {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e.Raw())
	}
	return b.String()
}
