package services

import (
	"context"
	"math"
	"sort"
	"strings"

	"ehsaas_server/models"
)

// MinCompatibility is the explore feed cutoff: candidates scoring below it
// are omitted entirely, not just ranked lower.
const MinCompatibility = 30

// ExploreCandidate is one entry of the ranked explore feed.
type ExploreCandidate struct {
	UserID       string   `json:"userId"`
	Name         string   `json:"name"`
	ProfilePic   string   `json:"profilePic,omitempty"`
	Bio          string   `json:"bio,omitempty"`
	Percent      int      `json:"percent"`
	CommonGenres []string `json:"commonGenres"`
}

// ExploreService builds the ranked candidate feed for a viewer.
type ExploreService struct {
	Profiles ProfileStore
	Actions  ActionStore
}

// CompatibilityScore returns the viewer's match percentage for a candidate
// and their shared genres (sorted, lowercase).
//
// The denominator is the size of the viewer's own genre set, so the score
// reads as "how much of my taste this person covers". It is intentionally
// directional: A's score of B and B's score of A can differ.
func CompatibilityScore(viewer, candidate *models.UserProfile) (int, []string) {
	mine := genreSet(viewer.Genres)
	var common []string
	for _, g := range candidate.Genres {
		g = strings.ToLower(strings.TrimSpace(g))
		if _, ok := mine[g]; ok {
			common = append(common, g)
			delete(mine, g) // count duplicates once
		}
	}
	sort.Strings(common)

	denominator := len(genreSet(viewer.Genres))
	if denominator == 0 {
		return 0, common
	}
	percent := int(math.Round(100 * float64(len(common)) / float64(denominator)))
	return percent, common
}

func genreSet(genres []string) map[string]struct{} {
	set := make(map[string]struct{}, len(genres))
	for _, g := range genres {
		g = strings.ToLower(strings.TrimSpace(g))
		if g != "" {
			set[g] = struct{}{}
		}
	}
	return set
}

// Explore returns the viewer's candidate feed, best score first.
//
// Pool filter, applied before scoring:
//   - never the viewer themselves
//   - mutual orientation compatibility (their gender matches what I want,
//     my gender matches what they want)
//   - nobody the viewer already acted on, tick or cross
func (s *ExploreService) Explore(ctx context.Context, viewerID string) ([]ExploreCandidate, error) {
	viewer, err := s.Profiles.GetProfile(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	actedOn := map[string]struct{}{viewerID: {}}
	actions, err := s.Actions.ActionsFrom(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	for _, a := range actions {
		actedOn[a.ToUser] = struct{}{}
	}

	profiles, err := s.Profiles.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}

	candidates := []ExploreCandidate{}
	for i := range profiles {
		candidate := &profiles[i]
		if _, skip := actedOn[candidate.UserID]; skip {
			continue
		}
		if candidate.Gender != viewer.InterestedIn || candidate.InterestedIn != viewer.Gender {
			continue
		}

		percent, common := CompatibilityScore(viewer, candidate)
		if percent < MinCompatibility {
			continue
		}
		if common == nil {
			common = []string{}
		}
		candidates = append(candidates, ExploreCandidate{
			UserID:       candidate.UserID,
			Name:         candidate.Name,
			ProfilePic:   candidate.ProfilePic,
			Bio:          candidate.Bio,
			Percent:      percent,
			CommonGenres: common,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Percent != candidates[j].Percent {
			return candidates[i].Percent > candidates[j].Percent
		}
		return candidates[i].UserID < candidates[j].UserID
	})
	return candidates, nil
}
