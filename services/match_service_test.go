package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ehsaas_server/models"
	"ehsaas_server/services"
)

// failingActionStore simulates an unreadable ledger.
type failingActionStore struct {
	services.ActionStore
}

func (failingActionStore) ActionsTo(context.Context, string) ([]models.VibeAction, error) {
	return nil, errors.New("ledger unavailable")
}

func TestPendingVibesLifecycle(t *testing.T) {
	svc, store := newVibeFixture(t)
	matches := &services.MatchService{Profiles: store, Actions: store}
	ctx := context.Background()

	// Aisha ticks Omar: Omar has one pending vibe, Aisha none.
	_, err := svc.ProcessAction(ctx, "aisha", "omar", models.ActionTick)
	require.NoError(t, err)

	pending, err := matches.PendingVibes(ctx, "omar")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "aisha", pending[0].FromUser)
	assert.Equal(t, 1, matches.PendingVibeCount(ctx, "omar"))
	assert.Equal(t, 0, matches.PendingVibeCount(ctx, "aisha"))

	// Omar ticks back: the pair is mutual, both badges drop to zero.
	_, err = svc.ProcessAction(ctx, "omar", "aisha", models.ActionTick)
	require.NoError(t, err)
	assert.Equal(t, 0, matches.PendingVibeCount(ctx, "omar"))
	assert.Equal(t, 0, matches.PendingVibeCount(ctx, "aisha"))
}

func TestPendingVibesIncludesCrossedBack(t *testing.T) {
	svc, store := newVibeFixture(t)
	matches := &services.MatchService{Profiles: store, Actions: store}
	ctx := context.Background()

	// Zed ticks Aisha, Aisha crosses Zed. Only a reciprocal tick clears
	// the badge, so the inbound tick still counts.
	_, err := svc.ProcessAction(ctx, "zed", "aisha", models.ActionTick)
	require.NoError(t, err)
	_, err = svc.ProcessAction(ctx, "aisha", "zed", models.ActionCross)
	require.NoError(t, err)

	assert.Equal(t, 1, matches.PendingVibeCount(ctx, "aisha"))
}

func TestCurrentMatches(t *testing.T) {
	svc, store := newVibeFixture(t)
	matches := &services.MatchService{Profiles: store, Actions: store}
	ctx := context.Background()

	_, err := svc.ProcessAction(ctx, "aisha", "omar", models.ActionTick)
	require.NoError(t, err)
	_, err = svc.ProcessAction(ctx, "aisha", "zed", models.ActionTick)
	require.NoError(t, err)

	// One-sided ticks are not matches.
	list, err := matches.CurrentMatches(ctx, "aisha")
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = svc.ProcessAction(ctx, "omar", "aisha", models.ActionTick)
	require.NoError(t, err)

	list, err = matches.CurrentMatches(ctx, "aisha")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "omar", list[0].UserID)
	assert.Equal(t, models.ResolveRoom("aisha", "omar"), list[0].Room)

	// Symmetric view.
	list, err = matches.CurrentMatches(ctx, "omar")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "aisha", list[0].UserID)
}

func TestPendingVibeCountDegradesToZero(t *testing.T) {
	_, store := newVibeFixture(t)
	matches := &services.MatchService{
		Profiles: store,
		Actions:  failingActionStore{ActionStore: store},
	}

	assert.Equal(t, 0, matches.PendingVibeCount(context.Background(), "omar"))
}
