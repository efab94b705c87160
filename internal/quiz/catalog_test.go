package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	builtin := Builtin()
	mini, err := Parse([]byte(minimalQuiz))
	require.NoError(t, err)

	c := NewCatalog(builtin, mini)

	got, err := c.Get(BuiltinID)
	require.NoError(t, err)
	assert.Equal(t, builtin.Title, got.Title)

	_, err = c.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, []Summary{
		{ID: BuiltinID, Title: builtin.Title, Questions: 5},
		{ID: "mini", Title: "Mini", Questions: 3},
	}, c.List())

	renamed := builtin
	renamed.Title = "Renamed"
	c.Put(renamed)
	list := c.List()
	require.Len(t, list, 2)
	assert.Equal(t, "Renamed", list[0].Title, "replacing keeps position")

	v, err := c.Public("mini")
	require.NoError(t, err)
	assert.Equal(t, "mini", v.ID)
	_, err = c.Public("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
