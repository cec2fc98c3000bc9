package doldoc

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrInvalidUTF8 reports input that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid utf-8 input")
	// ErrBinaryInput reports input that looks like binary data rather than a
	// document.
	ErrBinaryInput = errors.New("binary input detected")
)

// Inputs of at least binarySampleSize bytes are rejected when control bytes
// reach binaryControlPercent of the total.
const (
	binarySampleSize     = 64
	binaryControlPercent = 2
)

// InputError locates the first byte that made ValidateInput fail. Offset is
// -1 when the rejection is based on the whole input.
type InputError struct {
	Offset int
	Err    error
}

func (e *InputError) Error() string {
	if e.Offset < 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v at byte %d", e.Err, e.Offset)
}

func (e *InputError) Unwrap() error { return e.Err }

// ValidateInput rejects input that is not valid UTF-8 text. NUL bytes and a
// high share of control characters count as binary.
func ValidateInput(src []byte) error {
	controls := 0
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRune(src[i:])
		switch {
		case r == utf8.RuneError && size <= 1:
			return &InputError{Offset: i, Err: ErrInvalidUTF8}
		case r == 0:
			return &InputError{Offset: i, Err: ErrBinaryInput}
		case isControlRune(r) && r != '\v' && r != '\f':
			controls++
		}
		i += size
	}
	if len(src) >= binarySampleSize && controls*100 >= len(src)*binaryControlPercent {
		return &InputError{Offset: -1, Err: ErrBinaryInput}
	}
	return nil
}

// isControlRune reports runes the renderer drops: C0 controls other than
// line breaks and tabs, and DEL.
func isControlRune(r rune) bool {
	switch r {
	case '\n', '\r', '\t':
		return false
	case 0x7F:
		return true
	}
	return r < 0x20
}
