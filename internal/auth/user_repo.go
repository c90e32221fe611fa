package auth

import (
	"errors"
	"strings"
	"sync"

	"rimss/internal/domain/user"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already exists")
)

// UserRepo keeps the user directory in memory. Emails are the unique login
// key and are stored lowercased.
type UserRepo struct {
	mu      sync.RWMutex
	byID    map[string]user.User
	byEmail map[string]string
}

func NewUserRepo(seeded []user.User) *UserRepo {
	r := &UserRepo{
		byID:    make(map[string]user.User),
		byEmail: make(map[string]string),
	}
	for _, u := range seeded {
		u.Email = normalizeEmail(u.Email)
		r.byID[u.ID] = u
		r.byEmail[u.Email] = u.ID
	}
	return r
}

func (r *UserRepo) Create(u user.User) (user.User, error) {
	u.Email = normalizeEmail(u.Email)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byEmail[u.Email]; exists {
		return user.User{}, ErrEmailTaken
	}
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u.ID
	return u, nil
}

func (r *UserRepo) ByEmail(email string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[normalizeEmail(email)]
	if !ok {
		return user.User{}, ErrUserNotFound
	}
	return r.byID[id], nil
}

func (r *UserRepo) ByID(id string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return user.User{}, ErrUserNotFound
	}
	return u, nil
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}
