package doldoc

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func documentGen() gopter.Gen {
	block := gen.OneConstOf(
		"$CL$",
		"$CL+X-Y$",
		"$FG,RED$",
		"$FG$",
		`$FG,C="4"$`,
		`$TX,"Test"$`,
		`$TX+B-C,"Hello",S="World!"$`,
		`$TX,A=B,"c d, e"$`,
	)
	text := gen.AlphaString()
	segment := gen.OneGenOf(block, text)
	return gen.SliceOf(segment, reflect.TypeOf("")).Map(func(parts []string) string {
		return strings.Join(parts, "")
	})
}

func TestParseProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("entry sources concatenate to the input", prop.ForAll(
		func(input string) bool {
			entries, err := Parse(input)
			if err != nil {
				return false
			}
			return Source(entries) == input
		},
		documentGen(),
	))

	properties.Property("spans are contiguous and ordered", prop.ForAll(
		func(input string) bool {
			entries, err := Parse(input)
			if err != nil {
				return false
			}
			pos := 0
			for _, e := range entries {
				span := e.Position()
				if span.Start != pos || span.End <= span.Start {
					return false
				}
				if input[span.Start:span.End] != e.Raw() {
					return false
				}
				pos = span.End
			}
			return pos == len(input)
		},
		documentGen(),
	))

	properties.Property("re-parsing the source yields the same entries", prop.ForAll(
		func(input string) bool {
			first, err := Parse(input)
			if err != nil {
				return false
			}
			second, err := Parse(Source(first))
			if err != nil {
				return false
			}
			return reflect.DeepEqual(first, second)
		},
		documentGen(),
	))

	properties.Property("unknown codes are rejected", prop.ForAll(
		func(code string) bool {
			if _, known := resolvers[code]; known {
				return true
			}
			_, err := Parse("$" + code + "$")
			var uerr *UnrecognizedCommandError
			return errors.As(err, &uerr) && uerr.Code == code
		},
		gen.RegexMatch("[A-Z]{1,4}"),
	))

	properties.Property("plain text is a single entry", prop.ForAll(
		func(s string) bool {
			entries, err := Parse(s)
			if err != nil {
				return false
			}
			if s == "" {
				return len(entries) == 0
			}
			text, ok := entries[0].(Text)
			return len(entries) == 1 && ok && text.Plain && text.Content() == s
		},
		gen.AnyString().SuchThat(func(s string) bool { return !strings.ContainsRune(s, Delimiter) }),
	))

	properties.TestingRun(t)
}
