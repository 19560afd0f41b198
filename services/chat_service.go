package services

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"ehsaas_server/models"
	apperr "ehsaas_server/pkg/errors"
)

// Broadcaster fans a payload out to the live connections joined to a room.
// Implemented by socket.Hub.
type Broadcaster interface {
	Broadcast(room, event string, payload interface{})
}

// ChatService gates room access on mutual consent, serves durable history
// and runs the send path: validate, persist, then fan out.
type ChatService struct {
	Messages MessageStore
	Vibes    *VibeService
	Live     Broadcaster

	roomLocks sync.Map // room id -> *roomState
}

type roomState struct {
	mu       sync.Mutex
	lastSend time.Time
}

func (s *ChatService) room(roomID string) *roomState {
	state, _ := s.roomLocks.LoadOrStore(roomID, &roomState{})
	return state.(*roomState)
}

// RequireEligibility fails with CONSENT_REQUIRED unless the pair is a
// mutual match. Enforced before history is disclosed and before a send is
// accepted; joining a live room is deliberately not gated (join is cheap
// and idempotent, the data-access operations carry the authorization).
func (s *ChatService) RequireEligibility(ctx context.Context, a, b string) error {
	mutual, err := s.Vibes.IsMutual(ctx, a, b)
	if err != nil {
		return err
	}
	if !mutual {
		return apperr.ErrConsentRequired
	}
	return nil
}

// History returns the full message log of the viewer's room with peer,
// ascending by CreatedAt.
func (s *ChatService) History(ctx context.Context, viewer, peer string) ([]models.Message, error) {
	if err := s.RequireEligibility(ctx, viewer, peer); err != nil {
		return nil, err
	}

	messages, err := s.Messages.MessagesByRoom(ctx, models.ResolveRoom(viewer, peer))
	if err != nil {
		return nil, err
	}
	// CreatedAt is fixed-width UTC, so string order is time order.
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt < messages[j].CreatedAt
	})
	return messages, nil
}

// Send validates, persists and broadcasts one message.
//
// The whole path runs under the room's send lock, which gives every room a
// total order: all joined connections observe messages in acceptance order,
// and CreatedAt is monotonically non-decreasing per room. Persistence
// failures abort before any broadcast; the caller gets the error.
// Different rooms proceed independently.
func (s *ChatService) Send(ctx context.Context, roomID, senderID, text string) (*models.Message, error) {
	userA, userB, ok := models.RoomParticipants(roomID)
	if !ok {
		return nil, apperr.ErrBadRoom
	}
	if senderID != userA && senderID != userB {
		return nil, apperr.ErrNotParticipant
	}
	if strings.TrimSpace(text) == "" {
		return nil, apperr.ErrEmptyMessage
	}
	if err := s.RequireEligibility(ctx, userA, userB); err != nil {
		return nil, err
	}

	state := s.room(roomID)
	state.mu.Lock()
	defer state.mu.Unlock()

	now := time.Now().UTC()
	if !now.After(state.lastSend) {
		now = state.lastSend.Add(time.Nanosecond)
	}
	state.lastSend = now

	message := models.Message{
		Room:      roomID,
		CreatedAt: models.FormatMessageTime(now),
		MessageID: uuid.NewString(),
		SenderID:  senderID,
		Text:      text,
	}

	if err := s.Messages.PutMessage(ctx, message); err != nil {
		return nil, apperr.ErrMessageSaveFailed(err)
	}

	if s.Live != nil {
		s.Live.Broadcast(roomID, "message", message)
	}
	return &message, nil
}
