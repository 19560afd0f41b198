package services

import (
	"context"

	"ehsaas_server/models"
)

// ProfileStore is the read-side of the external profile service. The only
// write this server performs is the best-effort vibe counter bump.
type ProfileStore interface {
	// GetProfile returns the profile, or a NOT_FOUND AppError.
	GetProfile(ctx context.Context, userID string) (*models.UserProfile, error)
	// ListProfiles returns every profile. The explore candidate pool is
	// filtered in the service, mirroring how the scan-with-filter worked
	// against DynamoDB.
	ListProfiles(ctx context.Context) ([]models.UserProfile, error)
	// IncrementVibeCount adds one to the user's inbound vibe counter.
	IncrementVibeCount(ctx context.Context, userID string) error
}

// ActionStore persists the current vibe action per ordered (from, to) pair.
type ActionStore interface {
	// PutAction upserts by (FromUser, ToUser), replacing any prior action.
	PutAction(ctx context.Context, action models.VibeAction) error
	// GetAction returns the current action, or (nil, nil) when the pair has
	// no record.
	GetAction(ctx context.Context, from, to string) (*models.VibeAction, error)
	// ActionsFrom returns all current actions recorded by the given user.
	ActionsFrom(ctx context.Context, from string) ([]models.VibeAction, error)
	// ActionsTo returns all current actions targeting the given user.
	ActionsTo(ctx context.Context, to string) ([]models.VibeAction, error)
}

// MessageStore persists chat messages per room.
type MessageStore interface {
	PutMessage(ctx context.Context, message models.Message) error
	// MessagesByRoom returns the room's messages; callers sort by CreatedAt.
	MessagesByRoom(ctx context.Context, room string) ([]models.Message, error)
}
