package services_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ehsaas_server/models"
	"ehsaas_server/services"
	"ehsaas_server/socket"
)

// fakeConn is a live connection double for the hub.
type fakeConn struct {
	id string

	mu     sync.Mutex
	events []fakeEvent
}

type fakeEvent struct {
	Name    string
	Payload interface{}
}

func (c *fakeConn) ID() string { return c.id }

func (c *fakeConn) Emit(event string, args ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var payload interface{}
	if len(args) > 0 {
		payload = args[0]
	}
	c.events = append(c.events, fakeEvent{Name: event, Payload: payload})
}

func (c *fakeConn) received() []fakeEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]fakeEvent(nil), c.events...)
}

// TestVibeToChatFlow walks the full path: explore feed, tick, pending
// badge, reciprocal tick, live match notification, chat unlock, message
// fan-out and durable history.
func TestVibeToChatFlow(t *testing.T) {
	ctx := context.Background()

	store := seedStore(t,
		newProfile("aisha", models.GenderFemale, models.GenderMale, "indie", "jazz"),
		newProfile("omar", models.GenderMale, models.GenderFemale, "jazz", "pop"),
	)
	hub := socket.NewHub()
	vibes := &services.VibeService{Profiles: store, Actions: store}
	vibes.OnMatch = func(a, b string) {
		payload := map[string]interface{}{"room": models.ResolveRoom(a, b)}
		hub.Broadcast(a, "matched", payload)
		hub.Broadcast(b, "matched", payload)
	}
	explore := &services.ExploreService{Profiles: store, Actions: store}
	matches := &services.MatchService{Profiles: store, Actions: store}
	chat := &services.ChatService{Messages: store, Vibes: vibes, Live: hub}

	// Both users are online, listening on their personal rooms.
	aishaConn := &fakeConn{id: "conn-aisha"}
	omarConn := &fakeConn{id: "conn-omar"}
	hub.Join("aisha", aishaConn)
	hub.Join("omar", omarConn)

	// Aisha's explore feed scores Omar at 50: jazz out of {indie, jazz}.
	feed, err := explore.Explore(ctx, "aisha")
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "omar", feed[0].UserID)
	assert.Equal(t, 50, feed[0].Percent)
	assert.Equal(t, []string{"jazz"}, feed[0].CommonGenres)

	// Aisha ticks Omar.
	result, err := vibes.ProcessAction(ctx, "aisha", "omar", models.ActionTick)
	require.NoError(t, err)
	assert.False(t, result.Matched)
	assert.True(t, result.Pending)
	assert.Equal(t, 1, matches.PendingVibeCount(ctx, "omar"))

	// Omar ticks back: match, live notifications, badges cleared.
	result, err = vibes.ProcessAction(ctx, "omar", "aisha", models.ActionTick)
	require.NoError(t, err)
	assert.True(t, result.Matched)
	assert.Equal(t, 0, matches.PendingVibeCount(ctx, "omar"))
	assert.Equal(t, 0, matches.PendingVibeCount(ctx, "aisha"))

	for _, conn := range []*fakeConn{aishaConn, omarConn} {
		events := conn.received()
		require.Len(t, events, 1, "conn %s", conn.ID())
		assert.Equal(t, "matched", events[0].Name)
	}

	// Chat is now unlocked; both join the pair room and Omar says hey.
	room := models.ResolveRoom("aisha", "omar")
	require.NoError(t, chat.RequireEligibility(ctx, "aisha", "omar"))
	hub.Join(room, aishaConn)
	hub.Join(room, omarConn)

	sent, err := chat.Send(ctx, room, "omar", "hey")
	require.NoError(t, err)

	for _, conn := range []*fakeConn{aishaConn, omarConn} {
		events := conn.received()
		require.Len(t, events, 2, "conn %s", conn.ID())
		assert.Equal(t, "message", events[1].Name)
		message, ok := events[1].Payload.(models.Message)
		require.True(t, ok)
		assert.Equal(t, "hey", message.Text)
		assert.Equal(t, "omar", message.SenderID)
		assert.Equal(t, sent.CreatedAt, message.CreatedAt)
	}

	history, err := chat.History(ctx, "aisha", "omar")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, *sent, history[0])
}
