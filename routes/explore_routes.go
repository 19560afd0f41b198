package routes

import (
	"github.com/gorilla/mux"

	"ehsaas_server/controllers"
	"ehsaas_server/middleware"
	"ehsaas_server/services"
)

// RegisterExploreRoutes sets up the explore feed under /api/explore
func RegisterExploreRoutes(r *mux.Router, exploreService *services.ExploreService) {
	controller := controllers.NewExploreController(exploreService)

	exploreRouter := r.PathPrefix("/api/explore").Subrouter()
	exploreRouter.Use(middleware.Identity)
	exploreRouter.HandleFunc("", controller.HandleExplore).Methods("GET")
}
