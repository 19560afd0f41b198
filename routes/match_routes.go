package routes

import (
	"github.com/gorilla/mux"

	"ehsaas_server/controllers"
	"ehsaas_server/middleware"
	"ehsaas_server/services"
)

// RegisterMatchRoutes sets up match listing routes under /api/match
func RegisterMatchRoutes(r *mux.Router, matchService *services.MatchService) {
	controller := controllers.NewMatchController(matchService)

	matchRouter := r.PathPrefix("/api/match").Subrouter()
	matchRouter.Use(middleware.Identity)
	matchRouter.HandleFunc("/matches", controller.HandleMatches).Methods("GET")
	matchRouter.HandleFunc("/vibes", controller.HandlePendingVibes).Methods("GET")
	matchRouter.HandleFunc("/notifications", controller.HandleNotificationCount).Methods("GET")
}
