package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectConflicts(t *testing.T) {
	t.Run("NoConflicts", func(t *testing.T) {
		assert.Empty(t, DetectConflicts(RemapTable{"KeyQ": "KeyW", "KeyE": "KeyR"}))
		assert.Empty(t, DetectConflicts(nil))
	})

	t.Run("SharedTarget", func(t *testing.T) {
		conflicts := DetectConflicts(RemapTable{
			"KeyB": "KeyC",
			"KeyA": "KeyC",
			"KeyD": "KeyE",
		})
		require.Len(t, conflicts, 1)
		assert.Equal(t, ConflictSharedTarget, conflicts[0].Kind)
		assert.Equal(t, "C", conflicts[0].Token)
		assert.Equal(t, []string{"KeyA", "KeyB"}, conflicts[0].Sources)
		assert.Equal(t, []string{"KeyC"}, conflicts[0].Targets)
	})

	t.Run("DisplayCollision", func(t *testing.T) {
		conflicts := DetectConflicts(RemapTable{
			"KeyA": "KeyX",
			"KeyB": "X",
		})
		require.Len(t, conflicts, 1)
		assert.Equal(t, ConflictDisplayCollision, conflicts[0].Kind)
		assert.Equal(t, "X", conflicts[0].Token)
		assert.Equal(t, []string{"KeyX", "X"}, conflicts[0].Targets)
		assert.Equal(t, []string{"KeyA", "KeyB"}, conflicts[0].Sources)
	})

	t.Run("SortedByKindThenToken", func(t *testing.T) {
		conflicts := DetectConflicts(RemapTable{
			"KeyA": "KeyZ",
			"KeyB": "KeyZ",
			"KeyC": "KeyY",
			"KeyD": "KeyY",
			"KeyE": "KeyM",
			"KeyF": "M",
		})
		require.Len(t, conflicts, 3)
		assert.Equal(t, ConflictDisplayCollision, conflicts[0].Kind)
		assert.Equal(t, "Y", conflicts[1].Token)
		assert.Equal(t, "Z", conflicts[2].Token)

		grouped := GroupConflictsByKind(conflicts)
		assert.Len(t, grouped[ConflictSharedTarget], 2)
		assert.Equal(t, 1, CountConflicts(conflicts, ConflictDisplayCollision))
	})
}
