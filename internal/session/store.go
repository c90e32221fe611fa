// Package session owns the current authenticated identity for the
// storefront. The store delegates every credential check to the auth
// collaborator and only keeps the latest answer.
package session

import (
	"context"
	"log/slog"
	"sync"

	"rimss/internal/auth"
	"rimss/internal/domain/user"
	"rimss/internal/tokens"
)

// AuthAPI is the slice of the auth collaborator the store needs.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (auth.Credentials, error)
	Register(ctx context.Context, in auth.RegisterInput) (auth.Credentials, error)
	CurrentUser(ctx context.Context, token string) (user.User, error)
}

type Store struct {
	mu      sync.RWMutex
	user    *user.User
	loading bool

	api    AuthAPI
	tokens tokens.Storage
	log    *slog.Logger
}

// NewStore builds the store and runs the session-resume pass before
// returning: a stored token is exchanged for its user record, and a rejected
// token is cleared so the next start skips the lookup. Loading settles false
// exactly once, whatever the outcome.
func NewStore(ctx context.Context, api AuthAPI, ts tokens.Storage, log *slog.Logger) *Store {
	s := &Store{
		loading: true,
		api:     api,
		tokens:  ts,
		log:     log,
	}
	s.restore(ctx)
	return s
}

func (s *Store) restore(ctx context.Context) {
	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	tok, err := s.tokens.Load()
	if err != nil {
		// Nobody is awaiting this; log and start signed out.
		s.log.Error("session: reading stored token", "err", err)
		return
	}
	if tok == "" {
		return
	}

	u, err := s.api.CurrentUser(ctx, tok)
	if err != nil {
		s.log.Warn("session: stored token rejected", "err", err)
		if err := s.tokens.Clear(); err != nil {
			s.log.Error("session: clearing rejected token", "err", err)
		}
		return
	}

	s.mu.Lock()
	s.user = &u
	s.mu.Unlock()
}

func (s *Store) Login(ctx context.Context, email, password string) (user.User, error) {
	creds, err := s.api.Login(ctx, email, password)
	if err != nil {
		s.log.Error("session: login failed", "err", err)
		return user.User{}, err
	}
	s.adopt(creds)
	return creds.User, nil
}

func (s *Store) Register(ctx context.Context, in auth.RegisterInput) (user.User, error) {
	creds, err := s.api.Register(ctx, in)
	if err != nil {
		s.log.Error("session: registration failed", "err", err)
		return user.User{}, err
	}
	s.adopt(creds)
	return creds.User, nil
}

// adopt persists the credential token and installs the user. A storage
// failure keeps the in-memory session alive; it only costs the resume on
// next start.
func (s *Store) adopt(creds auth.Credentials) {
	if err := s.tokens.Save(creds.Token); err != nil {
		s.log.Error("session: persisting token", "err", err)
	}
	u := creds.User
	s.mu.Lock()
	s.user = &u
	s.mu.Unlock()
}

// Logout clears the user and the persisted token. Synchronous, side-effect
// only.
func (s *Store) Logout() {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()

	if err := s.tokens.Clear(); err != nil {
		s.log.Error("session: clearing token", "err", err)
	}
}

// User returns the signed-in user, if any.
func (s *Store) User() (user.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return user.User{}, false
	}
	return *s.user, true
}

func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}
