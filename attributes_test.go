package tagattrs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Attributes(t *testing.T) {
	t.Run("should keep insertion order and replace values in place", func(t *testing.T) {
		a := NewAttributes(
			Attribute{Name: "msg", Value: "hello"},
			Attribute{Name: "class", Value: "btn"},
		)
		a.Set("msg", "bye")
		a.Set("id", "7")

		assert.Equal(t, []string{"msg", "class", "id"}, a.Names())
		v, ok := a.Get("msg")
		require.True(t, ok)
		assert.Equal(t, "bye", v)
		assert.Equal(t, 3, a.Len())
	})

	t.Run("should delete and reindex the remaining entries", func(t *testing.T) {
		a := NewAttributes(
			Attribute{Name: "a", Value: "1"},
			Attribute{Name: "b", Value: "2"},
			Attribute{Name: "c", Value: "3"},
		)
		a.Delete("a")
		a.Delete("missing")

		assert.Equal(t, []string{"b", "c"}, a.Names())
		v, ok := a.Get("c")
		require.True(t, ok)
		assert.Equal(t, "3", v)
		assert.False(t, a.Has("a"))

		a.Set("c", "33")
		assert.Equal(t, []Attribute{{Name: "b", Value: "2"}, {Name: "c", Value: "33"}}, a.List())
	})

	t.Run("should treat zero and nil values as empty", func(t *testing.T) {
		var zero Attributes
		zero.Set("x", "1")
		assert.Equal(t, 1, zero.Len())

		var nilAttrs *Attributes
		assert.Equal(t, 0, nilAttrs.Len())
		assert.False(t, nilAttrs.Has("x"))
		assert.Nil(t, nilAttrs.List())
		assert.Empty(t, nilAttrs.Names())
		assert.Empty(t, nilAttrs.Map())
		assert.NotPanics(t, func() { nilAttrs.Delete("x") })
		assert.True(t, nilAttrs.Equal(&Attributes{}))
	})

	t.Run("should build from a map in sorted key order", func(t *testing.T) {
		a := AttributesFromMap(map[string]string{"z": "1", "a": "2", "m": "3"})
		assert.Equal(t, []string{"a", "m", "z"}, a.Names())
		assert.Equal(t, map[string]string{"z": "1", "a": "2", "m": "3"}, a.Map())
	})

	t.Run("should compare pairs and order", func(t *testing.T) {
		ab := NewAttributes(Attribute{Name: "a", Value: "1"}, Attribute{Name: "b", Value: "2"})
		ba := NewAttributes(Attribute{Name: "b", Value: "2"}, Attribute{Name: "a", Value: "1"})
		assert.True(t, ab.Equal(NewAttributes(ab.List()...)))
		assert.False(t, ab.Equal(ba))
	})

	t.Run("should stop iterating when the caller breaks", func(t *testing.T) {
		a := NewAttributes(Attribute{Name: "a"}, Attribute{Name: "b"}, Attribute{Name: "c"})
		var seen []string
		for k := range a.All() {
			seen = append(seen, k)
			if k == "b" {
				break
			}
		}
		assert.Equal(t, []string{"a", "b"}, seen)
	})

	t.Run("should not expose internal storage through List", func(t *testing.T) {
		a := NewAttributes(Attribute{Name: "a", Value: "1"})
		l := a.List()
		l[0].Value = "changed"
		v, _ := a.Get("a")
		assert.Equal(t, "1", v)
	})
}
