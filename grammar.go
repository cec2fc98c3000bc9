package doldoc

// grammar is a recursive descent parser over the tokens of one block:
//
//	command = "$" code flags args "$"
//	code    = UPPER+
//	flag    = ("+" | "-") UPPER+
//	arg     = "," ( key "=" value | "="? value )
//	value   = UPPER+ | quoted_string
type grammar struct {
	tokens []Token
	idx    int
	end    int
}

// ParseCommand parses one complete $...$ block into a Command.
func ParseCommand(block string) (Command, error) {
	tokens, n, err := Lex(block)
	if err != nil {
		return Command{}, err
	}
	if n < len(block) {
		return Command{}, &GrammarError{
			Pos:      n,
			Expected: "end of block",
			Found:    &Token{Kind: tokenLiteral, Text: block[n:], Pos: n},
		}
	}
	g := grammar{tokens: tokens, end: n}
	return g.command()
}

func (g *grammar) peek() (Token, bool) {
	if g.idx >= len(g.tokens) {
		return Token{}, false
	}
	return g.tokens[g.idx], true
}

func (g *grammar) peekIs(kind tokenKind) bool {
	tok, ok := g.peek()
	return ok && tok.Kind == kind
}

func (g *grammar) errorf(expected string) error {
	tok, ok := g.peek()
	if !ok {
		return &GrammarError{Pos: g.end, Expected: expected}
	}
	return &GrammarError{Pos: tok.Pos, Expected: expected, Found: &tok}
}

func (g *grammar) expect(kind tokenKind) (Token, error) {
	tok, ok := g.peek()
	if !ok || tok.Kind != kind {
		return Token{}, g.errorf(kind.String())
	}
	g.idx++
	return tok, nil
}

// upper consumes a literal made only of uppercase ASCII letters.
func (g *grammar) upper(what string) (string, error) {
	tok, ok := g.peek()
	if !ok || tok.Kind != tokenLiteral || !isUpperWord(tok.Text) {
		return "", g.errorf(what)
	}
	g.idx++
	return tok.Text, nil
}

func (g *grammar) command() (Command, error) {
	if _, err := g.expect(tokenDelimiter); err != nil {
		return Command{}, err
	}
	code, err := g.upper("uppercase command code")
	if err != nil {
		return Command{}, err
	}
	cmd := Command{Code: code}
	for g.peekIs(tokenPlus) || g.peekIs(tokenMinus) {
		flag, err := g.flag()
		if err != nil {
			return Command{}, err
		}
		cmd.Flags = append(cmd.Flags, flag)
	}
	for g.peekIs(tokenComma) {
		arg, err := g.arg()
		if err != nil {
			return Command{}, err
		}
		cmd.Args = append(cmd.Args, arg)
	}
	if _, err := g.expect(tokenDelimiter); err != nil {
		if g.peekIs(tokenPlus) || g.peekIs(tokenMinus) {
			return Command{}, g.errorf("',' or '$' (flags must precede arguments)")
		}
		return Command{}, err
	}
	if g.idx < len(g.tokens) {
		return Command{}, g.errorf("end of block")
	}
	return cmd, nil
}

func (g *grammar) flag() (Flag, error) {
	sign, _ := g.peek()
	g.idx++
	code, err := g.upper("uppercase flag code")
	if err != nil {
		return Flag{}, err
	}
	return Flag{Enabled: sign.Kind == tokenPlus, Code: code}, nil
}

func (g *grammar) arg() (Argument, error) {
	if _, err := g.expect(tokenComma); err != nil {
		return Argument{}, err
	}
	tok, ok := g.peek()
	if !ok {
		return Argument{}, g.errorf("argument")
	}
	switch tok.Kind {
	case tokenLiteral:
		if g.idx+1 < len(g.tokens) && g.tokens[g.idx+1].Kind == tokenEquals {
			key, err := g.upper("uppercase argument key")
			if err != nil {
				return Argument{}, err
			}
			g.idx++
			value, err := g.value()
			if err != nil {
				return Argument{}, err
			}
			return Argument{Key: key, HasKey: true, Value: value}, nil
		}
		value, err := g.value()
		if err != nil {
			return Argument{}, err
		}
		return Argument{Value: value}, nil
	case tokenEquals:
		g.idx++
		value, err := g.value()
		if err != nil {
			return Argument{}, err
		}
		return Argument{Value: value}, nil
	case tokenQuotedString:
		g.idx++
		return Argument{Value: tok.Text}, nil
	default:
		return Argument{}, g.errorf("argument")
	}
}

func (g *grammar) value() (string, error) {
	if tok, ok := g.peek(); ok && tok.Kind == tokenQuotedString {
		g.idx++
		return tok.Text, nil
	}
	return g.upper("uppercase value or quoted string")
}
