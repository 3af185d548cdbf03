package catalogs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	commands := testCommands()

	got, ok := Lookup(commands, "create-country")
	assert.True(t, ok)
	assert.Equal(t, "/country create", got.Name)

	_, ok = Lookup(commands, "does-not-exist")
	assert.False(t, ok)
}

func TestLookupIsExact(t *testing.T) {
	commands := testCommands()

	for _, id := range []string{"Create-Country", "create country", " create-country", "create"} {
		_, ok := Lookup(commands, id)
		assert.False(t, ok, id)
	}
}

func TestLookupReturnsFirstDuplicate(t *testing.T) {
	entries := []Link{
		{Record: Record{ID: "dup", Name: "first"}},
		{Record: Record{ID: "dup", Name: "second"}},
	}

	got, ok := Lookup(entries, "dup")
	assert.True(t, ok)
	assert.Equal(t, "first", got.Name)
}

func TestLookupEmpty(t *testing.T) {
	got, ok := Lookup([]Item(nil), "royal-crown")
	assert.False(t, ok)
	assert.Equal(t, Item{}, got)
}
