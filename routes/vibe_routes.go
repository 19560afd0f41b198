package routes

import (
	"github.com/gorilla/mux"

	"ehsaas_server/controllers"
	"ehsaas_server/middleware"
	"ehsaas_server/services"
)

// RegisterVibeRoutes sets up routes for vibe actions under /api/vibe
func RegisterVibeRoutes(r *mux.Router, vibeService *services.VibeService) {
	controller := controllers.NewVibeController(vibeService)

	vibeRouter := r.PathPrefix("/api/vibe").Subrouter()
	vibeRouter.Use(middleware.Identity)
	vibeRouter.HandleFunc("/action", controller.HandleVibeAction).Methods("POST")
}
