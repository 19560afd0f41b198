package routes

import (
	"github.com/gorilla/mux"

	"ehsaas_server/controllers"
	"ehsaas_server/middleware"
	"ehsaas_server/services"
)

// RegisterChatRoutes sets up chat routes under /api/chat
func RegisterChatRoutes(r *mux.Router, chatService *services.ChatService) {
	controller := controllers.NewChatController(chatService)

	chatRouter := r.PathPrefix("/api/chat").Subrouter()
	chatRouter.Use(middleware.Identity)
	chatRouter.HandleFunc("/{peerId}/messages", controller.HandleGetMessages).Methods("GET")
	chatRouter.HandleFunc("/{peerId}/messages", controller.HandleSendMessage).Methods("POST")
}
