package controllers

import (
	"net/http"

	"ehsaas_server/helpers"
	"ehsaas_server/middleware"
	"ehsaas_server/services"
)

// MatchController serves the derived reads over the consent ledger
type MatchController struct {
	MatchService *services.MatchService
}

// NewMatchController creates a new MatchController instance
func NewMatchController(matchService *services.MatchService) *MatchController {
	return &MatchController{MatchService: matchService}
}

// HandleMatches returns the viewer's mutual matches with peer profiles.
func (mc *MatchController) HandleMatches(w http.ResponseWriter, r *http.Request) {
	viewer, err := middleware.UserID(r.Context())
	if err != nil {
		helpers.WriteError(w, err)
		return
	}

	matches, err := mc.MatchService.CurrentMatches(r.Context(), viewer)
	if err != nil {
		helpers.WriteError(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, matches)
}

// HandlePendingVibes lists who ticked the viewer without reciprocation yet.
func (mc *MatchController) HandlePendingVibes(w http.ResponseWriter, r *http.Request) {
	viewer, err := middleware.UserID(r.Context())
	if err != nil {
		helpers.WriteError(w, err)
		return
	}

	vibes, err := mc.MatchService.PendingVibes(r.Context(), viewer)
	if err != nil {
		helpers.WriteError(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, vibes)
}

// HandleNotificationCount returns the badge counter. Never fails; the
// counter degrades to zero when the ledger is unreadable.
func (mc *MatchController) HandleNotificationCount(w http.ResponseWriter, r *http.Request) {
	viewer, err := middleware.UserID(r.Context())
	if err != nil {
		helpers.WriteError(w, err)
		return
	}

	count := mc.MatchService.PendingVibeCount(r.Context(), viewer)
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]int{"count": count})
}
