package socket_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ehsaas_server/socket"
)

type testConn struct {
	id    string
	panic bool

	mu     sync.Mutex
	events []string
}

func (c *testConn) ID() string { return c.id }

func (c *testConn) Emit(event string, args ...interface{}) {
	if c.panic {
		panic("connection closed")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
}

func (c *testConn) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.events)
}

func TestBroadcastReachesOnlyJoinedRoom(t *testing.T) {
	hub := socket.NewHub()
	a := &testConn{id: "a"}
	b := &testConn{id: "b"}
	other := &testConn{id: "c"}

	hub.Join("room-1", a)
	hub.Join("room-1", b)
	hub.Join("room-2", other)

	hub.Broadcast("room-1", "message", "hi")

	assert.Equal(t, 1, a.count())
	assert.Equal(t, 1, b.count())
	assert.Equal(t, 0, other.count(), "connections in other rooms are untouched")
}

func TestJoinIsIdempotent(t *testing.T) {
	hub := socket.NewHub()
	c := &testConn{id: "a"}

	hub.Join("room", c)
	hub.Join("room", c)
	require.Equal(t, 1, hub.MemberCount("room"))

	hub.Broadcast("room", "message", "hi")
	assert.Equal(t, 1, c.count(), "one membership, one delivery")
}

func TestLeaveStopsDelivery(t *testing.T) {
	hub := socket.NewHub()
	c := &testConn{id: "a"}

	hub.Join("room", c)
	hub.Leave("room", c)
	hub.Broadcast("room", "message", "hi")

	assert.Equal(t, 0, c.count())
	assert.Equal(t, 0, hub.MemberCount("room"))
}

func TestDropRemovesFromAllRooms(t *testing.T) {
	hub := socket.NewHub()
	c := &testConn{id: "a"}

	hub.Join("room-1", c)
	hub.Join("room-2", c)
	hub.Drop(c)

	assert.Equal(t, 0, hub.MemberCount("room-1"))
	assert.Equal(t, 0, hub.MemberCount("room-2"))
}

func TestDeadConnectionDoesNotBlockOthers(t *testing.T) {
	hub := socket.NewHub()
	dead := &testConn{id: "dead", panic: true}
	alive := &testConn{id: "alive"}

	hub.Join("room", dead)
	hub.Join("room", alive)

	hub.Broadcast("room", "message", "hi")
	assert.Equal(t, 1, alive.count(), "delivery continues past the dead member")
	assert.Equal(t, 1, hub.MemberCount("room"), "dead connection was evicted")

	hub.Broadcast("room", "message", "again")
	assert.Equal(t, 2, alive.count())
}

func TestBroadcastToUnknownRoomIsNoop(t *testing.T) {
	hub := socket.NewHub()
	hub.Broadcast("ghost-room", "message", "hi")
	assert.Equal(t, 0, hub.MemberCount("ghost-room"))
}

func TestConcurrentJoinAndBroadcast(t *testing.T) {
	hub := socket.NewHub()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		c := &testConn{id: string(rune('a' + i))}
		go func() {
			defer wg.Done()
			hub.Join("room", c)
		}()
		go func() {
			defer wg.Done()
			hub.Broadcast("room", "message", "hi")
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, hub.MemberCount("room"))
}
