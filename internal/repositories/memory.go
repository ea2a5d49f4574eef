package repositories

import (
	"context"
	"sort"
	"sync"

	"github.com/rohits-web03/resumehub/internal/models"
)

// MemoryStore keeps users and profiles in maps. Emails are unique in both
// collections, like the indexes on the real backends.
type MemoryStore struct {
	mu       sync.RWMutex
	users    map[string]models.User
	profiles map[string]models.Profile
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    make(map[string]models.User),
		profiles: make(map[string]models.Profile),
	}
}

func (s *MemoryStore) FindUserByID(_ context.Context, id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return user, nil
}

func (s *MemoryStore) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (s *MemoryStore) InsertUser(_ context.Context, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; ok {
		return ErrDuplicateKey
	}
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return ErrDuplicateKey
		}
	}
	s.users[user.ID] = user
	return nil
}

func (s *MemoryStore) FindProfileByEmail(_ context.Context, email string) (models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, profile := range s.profiles {
		if profile.Email == email {
			return profile, nil
		}
	}
	return models.Profile{}, ErrNotFound
}

func (s *MemoryStore) UpsertProfile(_ context.Context, profile models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, existing := range s.profiles {
		if id != profile.ID && existing.Email == profile.Email {
			return ErrDuplicateKey
		}
	}
	if existing, ok := s.profiles[profile.ID]; ok {
		profile.CreatedAt = existing.CreatedAt
	}
	s.profiles[profile.ID] = profile
	return nil
}

func (s *MemoryStore) ListProfiles(_ context.Context) ([]models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profiles := make([]models.Profile, 0, len(s.profiles))
	for _, profile := range s.profiles {
		profiles = append(profiles, profile)
	}
	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].CreatedAt.Before(profiles[j].CreatedAt)
	})
	return profiles, nil
}

func (s *MemoryStore) EnsureProfileIndexes(context.Context) error {
	return nil
}

func (s *MemoryStore) Close(context.Context) error {
	return nil
}
