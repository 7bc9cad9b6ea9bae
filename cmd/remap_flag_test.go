package cmd

import (
	"testing"

	"github.com/bafv4/minecraft-keybindings-sub001/pkg/keys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemapFlag(t *testing.T) {
	f := newRemapFlag()
	require.NoError(t, f.Set("CapsLock=ControlLeft"))
	require.NoError(t, f.Set(" KeyA = KeyZ , ShiftRight=ShiftLeft"))

	assert.Equal(t, keys.RemapTable{
		"CapsLock":   "ControlLeft",
		"KeyA":       "KeyZ",
		"ShiftRight": "ShiftLeft",
	}, f.table)
	assert.Equal(t, "CapsLock=ControlLeft,KeyA=KeyZ,ShiftRight=ShiftLeft", f.String())
	assert.Equal(t, "SRC=DST", f.Type())

	// later values win
	require.NoError(t, f.Set("CapsLock=Escape"))
	assert.Equal(t, "Escape", f.table["CapsLock"])
}

func TestRemapFlagRejectsMalformed(t *testing.T) {
	for _, v := range []string{"CapsLock", "=KeyA", "KeyA=", "KeyA=KeyB,,"} {
		assert.Error(t, newRemapFlag().Set(v), v)
	}
}
