package doldoc

import (
	"fmt"
	"sort"
)

// Span is a half-open byte range [Start, End) of the parsed input.
type Span struct {
	Start int
	End   int
}

// Entry is one unit of parsed output. The set of implementations is closed:
// Text, Clear and Foreground.
type Entry interface {
	// Code returns the command code of the entry; plain text runs report TX.
	Code() string
	// Modifiers returns the flags and arguments attached to the entry.
	Modifiers() (FlagList, ArgumentList)
	// Position returns the span of input the entry was parsed from.
	Position() Span
	// Raw returns the exact input text of the entry's span.
	Raw() string

	isEntry()
}

// base holds what every entry carries.
type base struct {
	Flags  FlagList
	Args   ArgumentList
	Span   Span
	Source string
}

func (b base) Modifiers() (FlagList, ArgumentList) { return b.Flags, b.Args }
func (b base) Position() Span                      { return b.Span }
func (b base) Raw() string                         { return b.Source }
func (base) isEntry()                              {}

// Text is a plain text run or a $TX$ command.
type Text struct {
	base
	// Literal holds the run for plain text; it is empty for $TX$ commands.
	Literal string
	// Plain is true when the entry is a run of text outside any block.
	Plain bool
}

// Clear is the $CL$ command.
type Clear struct {
	base
}

// Foreground is the $FG$ command.
type Foreground struct {
	base
}

func (Text) Code() string       { return "TX" }
func (Clear) Code() string      { return "CL" }
func (Foreground) Code() string { return "FG" }

// Content returns the text to display: the literal run for plain text or the
// first positional argument of a $TX$ command.
func (t Text) Content() string {
	if t.Plain {
		return t.Literal
	}
	v, _ := t.Args.Positional(0)
	return v
}

// resolvers is the fixed command table. Adding a command means adding one
// row here and one Entry type.
var resolvers = map[string]func(base) Entry{
	"CL": func(b base) Entry { return Clear{base: b} },
	"TX": func(b base) Entry { return Text{base: b} },
	"FG": func(b base) Entry { return Foreground{base: b} },
}

// Resolve maps a parsed command onto its entry type. The lookup is exact and
// case-sensitive with no fallback.
func Resolve(cmd Command) (Entry, error) {
	return resolve(cmd, Span{}, "")
}

func resolve(cmd Command, span Span, source string) (Entry, error) {
	fn, ok := resolvers[cmd.Code]
	if !ok {
		return nil, &UnrecognizedCommandError{Code: cmd.Code}
	}
	return fn(base{Flags: cmd.Flags, Args: cmd.Args, Span: span, Source: source}), nil
}

// RecognizedCodes returns the command codes known to Resolve, sorted.
func RecognizedCodes() []string {
	codes := make([]string, 0, len(resolvers))
	for code := range resolvers {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Describe formats an entry for debugging output.
func Describe(e Entry) string {
	flags, args := e.Modifiers()
	span := e.Position()
	switch v := e.(type) {
	case Text:
		if v.Plain {
			return fmt.Sprintf("%d:%d text %q", span.Start, span.End, v.Literal)
		}
		return fmt.Sprintf("%d:%d TX flags=%v args=%v", span.Start, span.End, flags, args)
	default:
		return fmt.Sprintf("%d:%d %s flags=%v args=%v", span.Start, span.End, e.Code(), flags, args)
	}
}
