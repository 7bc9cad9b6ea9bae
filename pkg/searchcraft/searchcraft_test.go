package searchcraft

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"mixed case and digit", "aB3", []string{"KeyA", "KeyB", "Digit3"}},
		{"accented letter", "åxy", []string{"Char_å", "KeyX", "KeyY"}},
		{"symbols", "-/", []string{"Char_-", "Char_/"}},
		{"case preserved in char", "Éé", []string{"Char_É", "Char_é"}},
		{"four characters", "zz99", []string{"KeyZ", "KeyZ", "Digit9", "Digit9"}},
		{"japanese", "あ", []string{"Char_あ"}},
		{"empty", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEncodeErrors(t *testing.T) {
	t.Run("TooLong", func(t *testing.T) {
		_, err := Encode("abcde")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInputTooLong))

		var tooLong *InputTooLongError
		require.True(t, errors.As(err, &tooLong))
		assert.Equal(t, 5, tooLong.Length)
	})

	t.Run("LengthCountsCharacters", func(t *testing.T) {
		// four runes, eight bytes
		_, err := Encode("åäöü")
		assert.NoError(t, err)
	})

	t.Run("Space", func(t *testing.T) {
		_, err := Encode("a b")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrIllegalCharacter))

		var illegal *IllegalCharacterError
		require.True(t, errors.As(err, &illegal))
		assert.Equal(t, ' ', illegal.Char)
		assert.Equal(t, 1, illegal.Index)
	})

	t.Run("ControlCharacter", func(t *testing.T) {
		_, err := Encode("a\x01")
		var illegal *IllegalCharacterError
		require.True(t, errors.As(err, &illegal))
		assert.Equal(t, rune(1), illegal.Char)
	})

	t.Run("Tab", func(t *testing.T) {
		_, err := Encode("\t")
		assert.ErrorIs(t, err, ErrIllegalCharacter)
	})

	t.Run("LengthCheckedFirst", func(t *testing.T) {
		_, err := Encode("a b c")
		assert.ErrorIs(t, err, ErrInputTooLong)
	})
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		codes    []string
		expected string
	}{
		{"letters lower-cased", []string{"KeyA", "KeyB", "Digit3"}, "ab3"},
		{"char keeps case", []string{"Char_å", "KeyX", "KeyY"}, "åxy"},
		{"empty entries skipped", []string{"", "KeyQ", ""}, "q"},
		{"unknown codes dropped", []string{"ShiftLeft", "KeyA", "Char_", "Digit10"}, "a"},
		{"multi-char char payload", []string{"Char_ab"}, "ab"},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Decode(tt.codes))
		})
	}
}

func TestDecodeOptional(t *testing.T) {
	a, three := "KeyA", "Digit3"
	assert.Equal(t, "a3", DecodeOptional([]*string{&a, nil, &three, nil}))
	assert.Equal(t, "", DecodeOptional(nil))
}

func TestRoundTrip(t *testing.T) {
	for _, input := range []string{"ab3", "åxy", "z-9", "q", ""} {
		codes, err := Encode(input)
		require.NoError(t, err)
		assert.Equal(t, input, Decode(codes))
	}
}

func TestValidateSequence(t *testing.T) {
	assert.NoError(t, ValidateSequence([]string{"KeyA", "KeyB", "KeyC", "KeyD"}))
	assert.NoError(t, ValidateSequence(nil))
	assert.ErrorIs(t, ValidateSequence([]string{"KeyA", "KeyB", "KeyC", "KeyD", "KeyE"}), ErrInputTooLong)
}
