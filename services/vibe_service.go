package services

import (
	"context"
	"sync"
	"time"

	"ehsaas_server/logger"
	"ehsaas_server/models"
	apperr "ehsaas_server/pkg/errors"
)

// VibeResult is the outcome of recording a vibe action.
type VibeResult struct {
	Matched bool `json:"matched"`
	Pending bool `json:"pending"`
}

// VibeService owns the consent ledger and the match evaluation that runs
// after every write. The ledger keeps exactly one current action per
// ordered (from, to) pair; the unordered pair's state (none / pending /
// mutual) is derived, never stored.
type VibeService struct {
	Profiles ProfileStore
	Actions  ActionStore

	// OnMatch is called once when a pair transitions to mutual, with both
	// user ids. Used to push live "matched" notifications. Best-effort.
	OnMatch func(userA, userB string)

	pairLocks sync.Map // canonical pair key -> *sync.Mutex
}

// lockPair serializes the record-then-evaluate sequence per unordered pair,
// so two near-simultaneous ticks cannot both read a stale "not yet mutual".
func (s *VibeService) lockPair(a, b string) func() {
	key := models.ResolveRoom(a, b)
	mu, _ := s.pairLocks.LoadOrStore(key, &sync.Mutex{})
	lock := mu.(*sync.Mutex)
	lock.Lock()
	return lock.Unlock
}

// ProcessAction records a tick or cross from one user toward another and
// evaluates the pair's match state.
//
// Rules:
//   - both users must exist, and from != to
//   - a repeated identical action is a no-op (the original record stands)
//   - a new action replaces the prior one for the same ordered pair
//   - a cross never retracts an already-mutual pair; it is dropped
//   - a tick bumps the target's vibe counter (best-effort) and reports
//     matched when the reciprocal tick exists
func (s *VibeService) ProcessAction(ctx context.Context, from, to, action string) (*VibeResult, error) {
	if !models.ValidAction(action) {
		return nil, apperr.ErrUnknownAction
	}
	if from == to {
		return nil, apperr.ErrSelfAction
	}
	if _, err := s.Profiles.GetProfile(ctx, from); err != nil {
		return nil, err
	}
	if _, err := s.Profiles.GetProfile(ctx, to); err != nil {
		return nil, err
	}

	unlock := s.lockPair(from, to)
	defer unlock()

	existing, err := s.Actions.GetAction(ctx, from, to)
	if err != nil {
		return nil, err
	}
	reciprocal, err := s.Actions.GetAction(ctx, to, from)
	if err != nil {
		return nil, err
	}
	reciprocalTick := reciprocal != nil && reciprocal.Action == models.ActionTick

	if action == models.ActionCross {
		if existing != nil && existing.Action == models.ActionTick && reciprocalTick {
			// Pair is already mutual; chat stays granted. No rescind path.
			logger.Debug("cross ignored for mutual pair", "from", from, "to", to)
			return &VibeResult{Matched: true}, nil
		}
		if existing == nil || existing.Action != models.ActionCross {
			if err := s.putAction(ctx, from, to, action); err != nil {
				return nil, err
			}
		}
		return &VibeResult{}, nil
	}

	alreadyTicked := existing != nil && existing.Action == models.ActionTick
	if !alreadyTicked {
		if err := s.putAction(ctx, from, to, action); err != nil {
			return nil, err
		}
		// Observable side effect for profile display; match logic does not
		// depend on it.
		if err := s.Profiles.IncrementVibeCount(ctx, to); err != nil {
			logger.Warn("vibe count increment failed", "user", to, "err", err)
		}
	}

	if reciprocalTick {
		if !alreadyTicked && s.OnMatch != nil {
			s.OnMatch(from, to)
		}
		return &VibeResult{Matched: true}, nil
	}
	return &VibeResult{Pending: true}, nil
}

func (s *VibeService) putAction(ctx context.Context, from, to, action string) error {
	return s.Actions.PutAction(ctx, models.VibeAction{
		FromUser:  from,
		ToUser:    to,
		Action:    action,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	})
}

// CurrentAction returns the current action from -> to, or "" when none.
func (s *VibeService) CurrentAction(ctx context.Context, from, to string) (string, error) {
	action, err := s.Actions.GetAction(ctx, from, to)
	if err != nil {
		return "", err
	}
	if action == nil {
		return "", nil
	}
	return action.Action, nil
}

// StateFor derives the unordered pair's match state.
func (s *VibeService) StateFor(ctx context.Context, a, b string) (models.MatchState, error) {
	aToB, err := s.CurrentAction(ctx, a, b)
	if err != nil {
		return models.MatchNone, err
	}
	bToA, err := s.CurrentAction(ctx, b, a)
	if err != nil {
		return models.MatchNone, err
	}

	switch {
	case aToB == models.ActionTick && bToA == models.ActionTick:
		return models.MatchMutual, nil
	case aToB == models.ActionTick || bToA == models.ActionTick:
		return models.MatchPending, nil
	default:
		return models.MatchNone, nil
	}
}

// IsMutual reports whether both sides of the pair have ticked each other.
func (s *VibeService) IsMutual(ctx context.Context, a, b string) (bool, error) {
	state, err := s.StateFor(ctx, a, b)
	if err != nil {
		return false, err
	}
	return state == models.MatchMutual, nil
}
