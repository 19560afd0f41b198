package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"ehsaas_server/helpers"
	"ehsaas_server/middleware"
	"ehsaas_server/models"
	apperr "ehsaas_server/pkg/errors"
	"ehsaas_server/services"
)

// ChatController struct
type ChatController struct {
	ChatService *services.ChatService
}

// NewChatController initializes the chat controller
func NewChatController(chatService *services.ChatService) *ChatController {
	return &ChatController{ChatService: chatService}
}

// HandleGetMessages returns the full ordered history of the viewer's room
// with the peer. 403 CONSENT_REQUIRED unless the pair is mutual.
func (cc *ChatController) HandleGetMessages(w http.ResponseWriter, r *http.Request) {
	viewer, err := middleware.UserID(r.Context())
	if err != nil {
		helpers.WriteError(w, err)
		return
	}
	peer := mux.Vars(r)["peerId"]
	if peer == "" {
		helpers.WriteError(w, apperr.Validation("peerId is required"))
		return
	}

	messages, err := cc.ChatService.History(r.Context(), viewer, peer)
	if err != nil {
		helpers.WriteError(w, err)
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"room":     models.ResolveRoom(viewer, peer),
		"messages": messages,
	})
}

// HandleSendMessage is the REST send path. The message is persisted first
// and then fanned out to the room's live connections.
func (cc *ChatController) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	viewer, err := middleware.UserID(r.Context())
	if err != nil {
		helpers.WriteError(w, err)
		return
	}
	peer := mux.Vars(r)["peerId"]
	if peer == "" {
		helpers.WriteError(w, apperr.Validation("peerId is required"))
		return
	}

	var request struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		helpers.WriteError(w, apperr.Validation("invalid request payload"))
		return
	}

	room := models.ResolveRoom(viewer, peer)
	message, err := cc.ChatService.Send(r.Context(), room, viewer, request.Text)
	if err != nil {
		helpers.WriteError(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, message)
}
