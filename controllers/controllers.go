package controllers

import (
	"net/http"

	"ehsaas_server/helpers"
)

// HealthCheckHandler provides a basic health check
func HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// WelcomeHandler provides a welcome message
func WelcomeHandler(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"message": "Welcome to Ehsaas"})
}
