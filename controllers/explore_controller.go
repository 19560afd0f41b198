package controllers

import (
	"net/http"

	"ehsaas_server/helpers"
	"ehsaas_server/middleware"
	"ehsaas_server/services"
)

// ExploreController serves the ranked candidate feed
type ExploreController struct {
	ExploreService *services.ExploreService
}

// NewExploreController creates a new ExploreController instance
func NewExploreController(exploreService *services.ExploreService) *ExploreController {
	return &ExploreController{ExploreService: exploreService}
}

// HandleExplore returns the viewer's candidate feed, best score first.
func (ec *ExploreController) HandleExplore(w http.ResponseWriter, r *http.Request) {
	viewer, err := middleware.UserID(r.Context())
	if err != nil {
		helpers.WriteError(w, err)
		return
	}

	candidates, err := ec.ExploreService.Explore(r.Context(), viewer)
	if err != nil {
		helpers.WriteError(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, candidates)
}
