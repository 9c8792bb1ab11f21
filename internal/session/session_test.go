package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleIDsAreUnique(t *testing.T) {
	a := NewHandle("alice", 4)
	b := NewHandle("alice", 4)
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, "alice", a.User())
}

func TestSendDropsOldestWhenFull(t *testing.T) {
	h := NewHandle("bob", 2)
	h.Send(RecordEvent{Score: 1})
	h.Send(RecordEvent{Score: 2})
	h.Send(RecordEvent{Score: 3})

	require.Len(t, h.Events(), 2)
	assert.Equal(t, RecordEvent{Score: 2}, <-h.Events())
	assert.Equal(t, RecordEvent{Score: 3}, <-h.Events())
}

func TestSendAfterCloseIsDropped(t *testing.T) {
	h := NewHandle("carol", 2)
	h.Close()
	h.Close()

	h.Send(RecordEvent{Score: 1})
	assert.Empty(t, h.Events())

	select {
	case <-h.Done():
	default:
		t.Fatal("done channel not closed")
	}
}

func TestRegistryBroadcastSkipsSender(t *testing.T) {
	r := NewRegistry()
	a := NewHandle("a", 4)
	b := NewHandle("b", 4)
	c := NewHandle("c", 4)
	r.Register(a)
	r.Register(b)
	r.Register(c)
	require.Equal(t, 3, r.Count())

	n := r.Broadcast(a.ID(), RecordEvent{User: "a", Score: 500})
	assert.Equal(t, 2, n)
	assert.Empty(t, a.Events())
	assert.Equal(t, RecordEvent{User: "a", Score: 500}, <-b.Events())
	assert.Equal(t, RecordEvent{User: "a", Score: 500}, <-c.Events())

	r.Unregister(b.ID())
	_, ok := r.Get(b.ID())
	assert.False(t, ok)
	got, ok := r.Get(c.ID())
	require.True(t, ok)
	assert.Same(t, c, got)
	assert.Equal(t, 2, r.Count())
}
