// Package searchcraft converts short search-box inputs (at most four
// characters) to the physical key codes stored in a profile, and back.
package searchcraft

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// MaxLength is the longest input and sequence accepted.
const MaxLength = 4

const (
	letterPrefix = "Key"
	digitPrefix  = "Digit"
	charPrefix   = "Char_"
)

var (
	ErrInputTooLong     = errors.New("search craft input too long")
	ErrIllegalCharacter = errors.New("illegal character in search craft input")
)

// InputTooLongError is returned when an input or stored sequence has more
// than MaxLength entries.
type InputTooLongError struct {
	Length int
}

func (e *InputTooLongError) Error() string {
	return fmt.Sprintf("search craft input has %d characters, at most %d allowed", e.Length, MaxLength)
}

func (e *InputTooLongError) Is(target error) bool {
	return target == ErrInputTooLong
}

// IllegalCharacterError names the whitespace or control character that was rejected.
type IllegalCharacterError struct {
	Char  rune
	Index int
}

func (e *IllegalCharacterError) Error() string {
	return fmt.Sprintf("illegal character %q at position %d", e.Char, e.Index)
}

func (e *IllegalCharacterError) Is(target error) bool {
	return target == ErrIllegalCharacter
}

// Encode converts input into key codes, one per character. ASCII letters
// become Key<UPPER>, digits Digit<d>, and anything else Char_<c>.
func Encode(input string) ([]string, error) {
	runes := []rune(input)
	if len(runes) > MaxLength {
		return nil, &InputTooLongError{Length: len(runes)}
	}

	out := make([]string, 0, len(runes))
	for i, r := range runes {
		if r < 32 || unicode.IsSpace(r) {
			return nil, &IllegalCharacterError{Char: r, Index: i}
		}
		switch {
		case r <= unicode.MaxASCII && unicode.IsLetter(r):
			out = append(out, letterPrefix+string(unicode.ToUpper(r)))
		case r >= '0' && r <= '9':
			out = append(out, digitPrefix+string(r))
		default:
			out = append(out, charPrefix+string(r))
		}
	}
	return out, nil
}

// Decode is the inverse of Encode. Letters come back lower-case, empty
// entries are skipped and codes of any other shape are dropped.
func Decode(codes []string) string {
	var b strings.Builder
	for _, code := range codes {
		if code == "" {
			continue
		}
		b.WriteString(decodeOne(code))
	}
	return b.String()
}

// DecodeOptional decodes a stored sequence whose slots may be unset.
func DecodeOptional(codes []*string) string {
	present := make([]string, 0, len(codes))
	for _, c := range codes {
		if c != nil {
			present = append(present, *c)
		}
	}
	return Decode(present)
}

// ValidateSequence checks a stored key sequence before it is used.
func ValidateSequence(codes []string) error {
	if len(codes) > MaxLength {
		return &InputTooLongError{Length: len(codes)}
	}
	return nil
}

func decodeOne(code string) string {
	switch {
	case len(code) == len(letterPrefix)+1 && strings.HasPrefix(code, letterPrefix):
		return strings.ToLower(code[len(letterPrefix):])
	case len(code) == len(digitPrefix)+1 && strings.HasPrefix(code, digitPrefix):
		return code[len(digitPrefix):]
	case len(code) > len(charPrefix) && strings.HasPrefix(code, charPrefix):
		return code[len(charPrefix):]
	default:
		return ""
	}
}
