package doldoc

import "fmt"

// Delimiter opens and closes a command block.
const Delimiter = '$'

// Token is a lexical unit of a command block.
type Token struct {
	Kind TokenKind
	Text string
	// Pos is the byte offset of the token inside the block.
	Pos int
}

type tokenKind uint8

// TokenKind is the exported alias of tokenKind for tooling and error reporting.
type TokenKind = tokenKind

const (
	tokenLiteral tokenKind = iota
	tokenComma
	tokenDelimiter
	tokenEquals
	tokenQuotedString
	tokenPlus
	tokenMinus
)

const (
	// TokenLiteral is a run of letters, digits or underscore.
	TokenLiteral tokenKind = tokenLiteral
	// TokenComma separates arguments.
	TokenComma tokenKind = tokenComma
	// TokenDelimiter opens or closes a command block.
	TokenDelimiter tokenKind = tokenDelimiter
	// TokenEquals separates an argument key from its value.
	TokenEquals tokenKind = tokenEquals
	// TokenQuotedString is the verbatim content between double quotes.
	TokenQuotedString tokenKind = tokenQuotedString
	// TokenPlus prefixes an enabled flag.
	TokenPlus tokenKind = tokenPlus
	// TokenMinus prefixes a disabled flag.
	TokenMinus tokenKind = tokenMinus
)

func (k tokenKind) String() string {
	switch k {
	case tokenLiteral:
		return "literal"
	case tokenComma:
		return "','"
	case tokenDelimiter:
		return "'$'"
	case tokenEquals:
		return "'='"
	case tokenQuotedString:
		return "quoted string"
	case tokenPlus:
		return "'+'"
	case tokenMinus:
		return "'-'"
	default:
		return fmt.Sprintf("token(%d)", uint8(k))
	}
}

func (t Token) String() string {
	switch t.Kind {
	case tokenLiteral:
		return "literal " + t.Text
	case tokenQuotedString:
		return fmt.Sprintf("quoted string %q", t.Text)
	default:
		return t.Kind.String()
	}
}
