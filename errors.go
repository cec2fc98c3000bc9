package doldoc

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedEndOfStream reports a command block that ends inside a token
	// or before its closing delimiter.
	ErrUnexpectedEndOfStream = errors.New("unexpected end of stream")
	// ErrDelimiterExpected reports a command block that does not start with '$'.
	ErrDelimiterExpected = errors.New("delimiter expected")
	// ErrUnexpectedEOF reports a command block opened but never closed.
	ErrUnexpectedEOF = errors.New("unexpected end of input: command block not closed")
)

// UnexpectedCharacterError reports a rune that cannot start any token.
type UnexpectedCharacterError struct {
	Char rune
	Pos  int
}

func (e *UnexpectedCharacterError) Error() string {
	return fmt.Sprintf("unexpected character %q", e.Char)
}

// LexError is returned by Lex. Err is one of ErrUnexpectedEndOfStream,
// ErrDelimiterExpected or *UnexpectedCharacterError.
type LexError struct {
	Pos int
	Err error
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex: offset %d: %v", e.Pos, e.Err)
}

func (e *LexError) Unwrap() error { return e.Err }

// GrammarError reports a token sequence that does not fit the command grammar.
// Found is nil when the token sequence ended early.
type GrammarError struct {
	Pos      int
	Expected string
	Found    *Token
}

func (e *GrammarError) Error() string {
	if e.Found == nil {
		return fmt.Sprintf("grammar: offset %d: expected %s, found end of block", e.Pos, e.Expected)
	}
	return fmt.Sprintf("grammar: offset %d: expected %s, found %s", e.Pos, e.Expected, e.Found)
}

// UnrecognizedCommandError reports a well-formed command code that has no
// entry in the resolver table.
type UnrecognizedCommandError struct {
	Code string
}

func (e *UnrecognizedCommandError) Error() string {
	return fmt.Sprintf("unrecognized command %q", e.Code)
}

// ParseError wraps any failure of Parse with the location of the offending
// command block.
type ParseError struct {
	// Offset is the byte offset of the block's opening delimiter in the input.
	Offset int
	// Block is the raw command block, or the unterminated remainder.
	Block string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse: offset %d: %q: %v", e.Offset, e.Block, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
