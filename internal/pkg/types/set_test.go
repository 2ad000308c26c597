package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSet(t *testing.T) {
	t.Run("empty set", func(t *testing.T) {
		set := NewSet[string]()
		assert.Empty(t, set)
	})

	t.Run("duplicate elements", func(t *testing.T) {
		set := NewSet("a", "b", "b", "c", "c", "c")
		assert.Len(t, set, 3)
		for _, s := range []string{"a", "b", "c"} {
			assert.Contains(t, set, s)
		}
	})
}

func TestSet_Add(t *testing.T) {
	t.Run("add to existing set", func(t *testing.T) {
		set := NewSet(1, 2, 3)
		set.Add(3, 4, 5)

		assert.Len(t, set, 5)
		for i := 1; i <= 5; i++ {
			assert.Contains(t, set, i)
		}
	})

	t.Run("add no elements", func(t *testing.T) {
		set := NewSet(1, 2, 3)
		set.Add()

		assert.Len(t, set, 3)
	})
}

func TestSet_Has(t *testing.T) {
	set := NewSet("tx1", "tx2")

	assert.True(t, set.Has("tx1"))
	assert.True(t, set.Has("tx2"))
	assert.False(t, set.Has("tx3"))
	assert.False(t, NewSet[string]().Has(""))
}

func TestSet_AddMissing(t *testing.T) {
	t.Run("returns only values not already present", func(t *testing.T) {
		set := NewSet("tx1", "tx2")

		added := set.AddMissing("tx2", "tx3", "tx1", "tx4")

		assert.Equal(t, []string{"tx3", "tx4"}, added)
		assert.Len(t, set, 4)
	})

	t.Run("keeps input order and returns repeated values once", func(t *testing.T) {
		set := NewSet[string]()

		added := set.AddMissing("c", "a", "c", "b", "a")

		assert.Equal(t, []string{"c", "a", "b"}, added)
	})

	t.Run("second call with the same values adds nothing", func(t *testing.T) {
		set := NewSet[int]()
		set.AddMissing(1, 2, 3)

		added := set.AddMissing(1, 2, 3)

		assert.NotNil(t, added)
		assert.Empty(t, added)
	})
}
