package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminsGrant(t *testing.T) {
	a := NewAdmins()
	assert.False(t, a.IsAdmin(1))

	assert.True(t, a.Grant(1, "root"))
	assert.True(t, a.IsAdmin(1))
	assert.Equal(t, 1, a.Count())
}

func TestAdminsGrantIdempotent(t *testing.T) {
	a := NewAdmins()
	require.True(t, a.Grant(1, "root"))
	assert.False(t, a.Grant(1, "root_again"))

	list := a.List()
	require.Len(t, list, 1)
	assert.Equal(t, "root", list[0].Username)
}

func TestAdminsListKeepsOrder(t *testing.T) {
	a := NewAdmins()
	a.Grant(3, "c")
	a.Grant(1, "a")
	a.Grant(2, "b")

	list := a.List()
	require.Len(t, list, 3)
	assert.Equal(t, int64(3), list[0].ID)
	assert.Equal(t, int64(1), list[1].ID)
	assert.Equal(t, int64(2), list[2].ID)
}
