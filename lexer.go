package doldoc

import (
	"unicode"
	"unicode/utf8"
)

// lexer walks a command block with an explicit byte cursor.
type lexer struct {
	src    string
	pos    int
	tokens []Token
}

// Lex tokenizes the command block at the start of src. It stops right after
// the closing delimiter and returns the tokens together with the number of
// bytes consumed. Anything after the closing delimiter is left untouched.
func Lex(src string) ([]Token, int, error) {
	l := lexer{src: src}
	if err := l.run(); err != nil {
		return nil, l.pos, err
	}
	return l.tokens, l.pos, nil
}

func (l *lexer) peek() (rune, int, bool) {
	if l.pos >= len(l.src) {
		return 0, 0, false
	}
	r, size := utf8.DecodeRuneInString(l.src[l.pos:])
	return r, size, true
}

func (l *lexer) emit(kind tokenKind, text string, pos int) {
	l.tokens = append(l.tokens, Token{Kind: kind, Text: text, Pos: pos})
}

func (l *lexer) fail(pos int, err error) error {
	return &LexError{Pos: pos, Err: err}
}

func (l *lexer) run() error {
	r, size, ok := l.peek()
	if !ok || r != Delimiter {
		return l.fail(0, ErrDelimiterExpected)
	}
	l.emit(tokenDelimiter, "$", 0)
	l.pos += size

	for {
		start := l.pos
		r, size, ok := l.peek()
		if !ok {
			return l.fail(start, ErrUnexpectedEndOfStream)
		}
		switch {
		case r == Delimiter:
			l.pos += size
			l.emit(tokenDelimiter, "$", start)
			return nil
		case r == '=':
			l.pos += size
			l.emit(tokenEquals, "=", start)
		case r == ',':
			l.pos += size
			l.emit(tokenComma, ",", start)
		case r == '+':
			l.pos += size
			l.emit(tokenPlus, "+", start)
		case r == '-':
			l.pos += size
			l.emit(tokenMinus, "-", start)
		case r == '"':
			if err := l.quoted(); err != nil {
				return err
			}
		case isLiteralStart(r):
			if err := l.literal(); err != nil {
				return err
			}
		default:
			return l.fail(start, &UnexpectedCharacterError{Char: r, Pos: start})
		}
	}
}

// literal consumes a literal. A literal must be followed by another rune in
// the block; running out of input here is an error.
func (l *lexer) literal() error {
	start := l.pos
	_, size, _ := l.peek()
	l.pos += size
	for {
		r, size, ok := l.peek()
		if !ok {
			return l.fail(l.pos, ErrUnexpectedEndOfStream)
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		l.pos += size
	}
	l.emit(tokenLiteral, l.src[start:l.pos], start)
	return nil
}

// quoted consumes a quoted string verbatim; there are no escapes.
func (l *lexer) quoted() error {
	start := l.pos
	l.pos++
	for {
		r, size, ok := l.peek()
		if !ok {
			return l.fail(l.pos, ErrUnexpectedEndOfStream)
		}
		if r == '"' {
			l.emit(tokenQuotedString, l.src[start+1:l.pos], start)
			l.pos += size
			return nil
		}
		l.pos += size
	}
}

func isLiteralStart(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= 'a' && r <= 'z':
		return true
	}
	return r == '_'
}
