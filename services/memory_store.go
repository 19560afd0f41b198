package services

import (
	"context"
	"sync"

	"ehsaas_server/models"
	apperr "ehsaas_server/pkg/errors"
)

// MemoryStore is an in-process implementation of all three store
// interfaces, keyed the same way as the DynamoDB tables. It backs local
// development (STORAGE=memory) and the test suite. Contents are volatile.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles map[string]*models.UserProfile
	actions  map[string]models.VibeAction // key: from#to
	messages map[string][]models.Message  // key: room, append order
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		profiles: make(map[string]*models.UserProfile),
		actions:  make(map[string]models.VibeAction),
		messages: make(map[string][]models.Message),
	}
}

func pairKey(from, to string) string { return from + "#" + to }

// AddProfile seeds a profile. The profile service owns real profile writes;
// this exists for dev seeding and tests.
func (s *MemoryStore) AddProfile(profile models.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := profile
	s.profiles[profile.UserID] = &p
}

func (s *MemoryStore) GetProfile(_ context.Context, userID string) (*models.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[userID]
	if !ok {
		return nil, apperr.ErrUserNotFound
	}
	copied := *p
	return &copied, nil
}

func (s *MemoryStore) ListProfiles(_ context.Context) ([]models.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	profiles := make([]models.UserProfile, 0, len(s.profiles))
	for _, p := range s.profiles {
		profiles = append(profiles, *p)
	}
	return profiles, nil
}

func (s *MemoryStore) IncrementVibeCount(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[userID]
	if !ok {
		return apperr.ErrUserNotFound
	}
	p.VibeCount++
	return nil
}

func (s *MemoryStore) PutAction(_ context.Context, action models.VibeAction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.actions[pairKey(action.FromUser, action.ToUser)] = action
	return nil
}

func (s *MemoryStore) GetAction(_ context.Context, from, to string) (*models.VibeAction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	action, ok := s.actions[pairKey(from, to)]
	if !ok {
		return nil, nil
	}
	return &action, nil
}

func (s *MemoryStore) ActionsFrom(_ context.Context, from string) ([]models.VibeAction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var actions []models.VibeAction
	for _, a := range s.actions {
		if a.FromUser == from {
			actions = append(actions, a)
		}
	}
	return actions, nil
}

func (s *MemoryStore) ActionsTo(_ context.Context, to string) ([]models.VibeAction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var actions []models.VibeAction
	for _, a := range s.actions {
		if a.ToUser == to {
			actions = append(actions, a)
		}
	}
	return actions, nil
}

func (s *MemoryStore) PutMessage(_ context.Context, message models.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages[message.Room] = append(s.messages[message.Room], message)
	return nil
}

func (s *MemoryStore) MessagesByRoom(_ context.Context, room string) ([]models.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored := s.messages[room]
	messages := make([]models.Message, len(stored))
	copy(messages, stored)
	return messages, nil
}
