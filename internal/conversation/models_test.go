package conversation

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecentReturnsTrailingMessages(t *testing.T) {
	s := NewSession("t")
	for i := 0; i < 8; i++ {
		s.Append(NewMessage(RoleUser, string(rune('a'+i))))
	}

	got := s.Recent(6)
	require.Len(t, got, 6)
	assert.Equal(t, "c", got[0].Content)
	assert.Equal(t, "h", got[5].Content)

	all := s.Recent(100)
	assert.Len(t, all, 8)

	// Recent hands out copies, not the backing slice.
	got[0].Content = "mutated"
	assert.Equal(t, "c", s.Messages[2].Content)
}

func TestCollectionDeleteSessionKeepsOthers(t *testing.T) {
	var c Collection
	a := c.CreateSession("a")
	aID := a.ID
	bID := c.CreateSession("b").ID

	c.DeleteSession(aID)
	assert.Nil(t, c.Session(aID))
	require.NotNil(t, c.Session(bID))
	assert.Equal(t, "b", c.Session(bID).Title)
}

func TestSessionLookupOnCollectionValue(t *testing.T) {
	var c Collection
	id := c.CreateSession("a").ID

	// Lookup must work on an rvalue copy, the shape Engine.Collection
	// hands out.
	got := c.Clone().Session(id)
	require.NotNil(t, got)
	assert.Equal(t, "a", got.Title)
	assert.Nil(t, c.Clone().Session(uuid.New()))
}

func TestCloneIsDeep(t *testing.T) {
	var c Collection
	s := c.CreateSession("a")
	s.Append(NewMessage(RoleUser, "hello"))

	cp := c.Clone()
	cp.Sessions[0].Messages[0].Content = "changed"
	cp.Sessions[0].Title = "renamed"

	assert.Equal(t, "hello", c.Sessions[0].Messages[0].Content)
	assert.Equal(t, "a", c.Sessions[0].Title)
}
