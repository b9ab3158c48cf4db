package store

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrEmailTaken = errors.New("email already registered")

// User is a dashboard account allowed to read the snapshot and trigger
// refreshes.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserStore is the in-memory dashboard user registry.
type UserStore struct {
	mu        sync.RWMutex
	byID      map[string]*User
	idByEmail map[string]string
}

func NewUserStore() *UserStore {
	return &UserStore{
		byID:      make(map[string]*User),
		idByEmail: make(map[string]string),
	}
}

// Create registers a new user. Emails are case-insensitive and unique.
func (s *UserStore) Create(email, name, role, passwordHash string) (*User, error) {
	key := strings.ToLower(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.idByEmail[key]; taken {
		return nil, ErrEmailTaken
	}

	u := &User{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         name,
		Role:         role,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	s.byID[u.ID] = u
	s.idByEmail[key] = u.ID
	return u, nil
}

// ByEmail looks a user up by email, case-insensitively.
func (s *UserStore) ByEmail(email string) (*User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.idByEmail[strings.ToLower(email)]
	if !ok {
		return nil, false
	}
	return s.byID[id], true
}

// ByID looks a user up by identifier.
func (s *UserStore) ByID(id string) (*User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byID[id]
	return u, ok
}

// Count returns the number of registered users.
func (s *UserStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}
