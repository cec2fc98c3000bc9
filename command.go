package doldoc

import "strings"

// Flag is a +CODE or -CODE toggle attached to a command.
type Flag struct {
	Enabled bool
	Code    string
}

func (f Flag) String() string {
	if f.Enabled {
		return "+" + f.Code
	}
	return "-" + f.Code
}

// FlagList keeps flags in input order. Duplicates are preserved.
type FlagList []Flag

// Lookup returns the last flag with the given code.
func (l FlagList) Lookup(code string) (Flag, bool) {
	for i := len(l) - 1; i >= 0; i-- {
		if l[i].Code == code {
			return l[i], true
		}
	}
	return Flag{}, false
}

// Enabled reports whether the last occurrence of code is a + flag.
func (l FlagList) Enabled(code string) bool {
	f, ok := l.Lookup(code)
	return ok && f.Enabled
}

// Argument is a positional value or a KEY=VALUE pair.
type Argument struct {
	Key    string
	HasKey bool
	Value  string
}

func (a Argument) String() string {
	if a.HasKey {
		return a.Key + "=" + quoteValue(a.Value)
	}
	return quoteValue(a.Value)
}

// ArgumentList keeps arguments in input order. Duplicate keys are preserved.
type ArgumentList []Argument

// Lookup returns the value of the last argument with the given key.
func (l ArgumentList) Lookup(key string) (string, bool) {
	for i := len(l) - 1; i >= 0; i-- {
		if l[i].HasKey && l[i].Key == key {
			return l[i].Value, true
		}
	}
	return "", false
}

// Positional returns the n-th argument without a key.
func (l ArgumentList) Positional(n int) (string, bool) {
	for _, arg := range l {
		if arg.HasKey {
			continue
		}
		if n == 0 {
			return arg.Value, true
		}
		n--
	}
	return "", false
}

// Command is the uninterpreted form of one $...$ block.
type Command struct {
	Code  string
	Flags FlagList
	Args  ArgumentList
}

// String formats the command back into block syntax.
func (c Command) String() string {
	var b strings.Builder
	b.WriteRune(Delimiter)
	b.WriteString(c.Code)
	for _, f := range c.Flags {
		b.WriteString(f.String())
	}
	for _, a := range c.Args {
		b.WriteByte(',')
		b.WriteString(a.String())
	}
	b.WriteRune(Delimiter)
	return b.String()
}

func quoteValue(v string) string {
	if v != "" && isUpperWord(v) {
		return v
	}
	return `"` + v + `"`
}

func isUpperWord(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
