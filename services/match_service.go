package services

import (
	"context"

	"ehsaas_server/logger"
	"ehsaas_server/models"
)

// MatchSummary is one entry of a user's matches page.
type MatchSummary struct {
	UserID     string `json:"userId"`
	Name       string `json:"name"`
	ProfilePic string `json:"profilePic,omitempty"`
	Bio        string `json:"bio,omitempty"`
	Room       string `json:"room"`
}

// VibeNotification is one inbound tick awaiting reciprocation.
type VibeNotification struct {
	FromUser   string `json:"fromUser"`
	Name       string `json:"name"`
	ProfilePic string `json:"profilePic,omitempty"`
	CreatedAt  string `json:"createdAt"`
}

// MatchService produces the derived reads over the consent ledger: the
// matches page, the "who vibed me" list and the badge counter.
type MatchService struct {
	Profiles ProfileStore
	Actions  ActionStore
}

// CurrentMatches returns the viewer's mutual matches, enriched with the
// peer's profile and the chat room id.
func (s *MatchService) CurrentMatches(ctx context.Context, userID string) ([]MatchSummary, error) {
	outbound, err := s.Actions.ActionsFrom(ctx, userID)
	if err != nil {
		return nil, err
	}

	matches := []MatchSummary{}
	for _, a := range outbound {
		if a.Action != models.ActionTick {
			continue
		}
		reciprocal, err := s.Actions.GetAction(ctx, a.ToUser, userID)
		if err != nil {
			return nil, err
		}
		if reciprocal == nil || reciprocal.Action != models.ActionTick {
			continue
		}

		peer, err := s.Profiles.GetProfile(ctx, a.ToUser)
		if err != nil {
			// Peer profile gone from the profile service; skip rather than
			// break the whole page.
			logger.Warn("match peer profile missing", "user", a.ToUser, "err", err)
			continue
		}
		matches = append(matches, MatchSummary{
			UserID:     peer.UserID,
			Name:       peer.Name,
			ProfilePic: peer.ProfilePic,
			Bio:        peer.Bio,
			Room:       models.ResolveRoom(userID, peer.UserID),
		})
	}
	return matches, nil
}

// PendingVibes lists inbound ticks the viewer has not ticked back.
func (s *MatchService) PendingVibes(ctx context.Context, userID string) ([]VibeNotification, error) {
	inbound, err := s.Actions.ActionsTo(ctx, userID)
	if err != nil {
		return nil, err
	}

	pending := []VibeNotification{}
	for _, a := range inbound {
		if a.Action != models.ActionTick {
			continue
		}
		reciprocal, err := s.Actions.GetAction(ctx, userID, a.FromUser)
		if err != nil {
			return nil, err
		}
		if reciprocal != nil && reciprocal.Action == models.ActionTick {
			continue
		}

		notification := VibeNotification{FromUser: a.FromUser, CreatedAt: a.CreatedAt}
		if sender, err := s.Profiles.GetProfile(ctx, a.FromUser); err == nil {
			notification.Name = sender.Name
			notification.ProfilePic = sender.ProfilePic
		}
		pending = append(pending, notification)
	}
	return pending, nil
}

// PendingVibeCount is the badge counter. It is a best-effort UI aid and
// degrades to zero when the ledger cannot be read.
func (s *MatchService) PendingVibeCount(ctx context.Context, userID string) int {
	pending, err := s.PendingVibes(ctx, userID)
	if err != nil {
		logger.Warn("pending vibe count degraded to zero", "user", userID, "err", err)
		return 0
	}
	return len(pending)
}
