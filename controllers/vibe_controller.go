package controllers

import (
	"encoding/json"
	"net/http"

	"ehsaas_server/helpers"
	"ehsaas_server/middleware"
	apperr "ehsaas_server/pkg/errors"
	"ehsaas_server/services"
)

// VibeController handles HTTP requests for vibe actions
type VibeController struct {
	VibeService *services.VibeService
}

// NewVibeController creates a new VibeController instance
func NewVibeController(vibeService *services.VibeService) *VibeController {
	return &VibeController{VibeService: vibeService}
}

// HandleVibeAction records a tick or cross from the viewer toward a target
// and reports whether it produced a match.
func (vc *VibeController) HandleVibeAction(w http.ResponseWriter, r *http.Request) {
	viewer, err := middleware.UserID(r.Context())
	if err != nil {
		helpers.WriteError(w, err)
		return
	}

	var request struct {
		ToUser string `json:"toUser"`
		Action string `json:"action"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		helpers.WriteError(w, apperr.Validation("invalid request payload"))
		return
	}
	if request.ToUser == "" {
		helpers.WriteError(w, apperr.Validation("toUser is required"))
		return
	}

	result, err := vc.VibeService.ProcessAction(r.Context(), viewer, request.ToUser, request.Action)
	if err != nil {
		helpers.WriteError(w, err)
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"matched": result.Matched,
		"pending": result.Pending,
	})
}
