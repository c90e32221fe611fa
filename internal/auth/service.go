package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"rimss/internal/domain/user"
	"rimss/internal/util"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// Credentials is what a successful login or registration hands back: the
// user record plus the signed token the client should persist.
type Credentials struct {
	User  user.User `json:"user"`
	Token string    `json:"token"`
}

type RegisterInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Avatar    string `json:"avatar,omitempty"`
}

// Service is the auth collaborator: it verifies passwords against the user
// directory and issues/validates the JWT credential tokens the session layer
// stores.
type Service struct {
	users *UserRepo
	jwt   *JWTManager
	delay time.Duration
}

func NewService(users *UserRepo, jwt *JWTManager, delay time.Duration) *Service {
	return &Service{users: users, jwt: jwt, delay: delay}
}

func (s *Service) Login(ctx context.Context, email, password string) (Credentials, error) {
	if err := util.SimulateLatency(ctx, s.delay); err != nil {
		return Credentials{}, err
	}

	u, err := s.users.ByEmail(email)
	if err != nil || !u.IsActive {
		return Credentials{}, ErrInvalidCredentials
	}
	if !CheckPassword(u.PasswordHash, password) {
		return Credentials{}, ErrInvalidCredentials
	}

	tok, _, err := s.jwt.Sign(u.ID, u.Role)
	if err != nil {
		return Credentials{}, fmt.Errorf("sign token: %w", err)
	}
	return Credentials{User: u, Token: tok}, nil
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (Credentials, error) {
	if err := util.SimulateLatency(ctx, s.delay); err != nil {
		return Credentials{}, err
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return Credentials{}, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.users.Create(user.User{
		ID:           uuid.NewString(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: hash,
		Avatar:       in.Avatar,
		Role:         user.RoleUser,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return Credentials{}, err
	}

	tok, _, err := s.jwt.Sign(u.ID, u.Role)
	if err != nil {
		return Credentials{}, fmt.Errorf("sign token: %w", err)
	}
	return Credentials{User: u, Token: tok}, nil
}

// CurrentUser exchanges a previously issued token for its user record.
// Expired, tampered, or orphaned tokens all come back as ErrInvalidToken.
func (s *Service) CurrentUser(ctx context.Context, token string) (user.User, error) {
	if err := util.SimulateLatency(ctx, s.delay); err != nil {
		return user.User{}, err
	}

	claims, err := s.jwt.Parse(token)
	if err != nil {
		return user.User{}, ErrInvalidToken
	}
	u, err := s.users.ByID(claims.UserID)
	if err != nil {
		return user.User{}, ErrInvalidToken
	}
	return u, nil
}
