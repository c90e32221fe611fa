package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"rimss/internal/auth"
	"rimss/internal/domain/user"
	"rimss/internal/tokens"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeAuthAPI struct {
	loginFn    func(ctx context.Context, email, password string) (auth.Credentials, error)
	registerFn func(ctx context.Context, in auth.RegisterInput) (auth.Credentials, error)
	currentFn  func(ctx context.Context, token string) (user.User, error)

	currentCalls int
}

func (f *fakeAuthAPI) Login(ctx context.Context, email, password string) (auth.Credentials, error) {
	if f.loginFn == nil {
		return auth.Credentials{}, errors.New("unexpected Login call")
	}
	return f.loginFn(ctx, email, password)
}

func (f *fakeAuthAPI) Register(ctx context.Context, in auth.RegisterInput) (auth.Credentials, error) {
	if f.registerFn == nil {
		return auth.Credentials{}, errors.New("unexpected Register call")
	}
	return f.registerFn(ctx, in)
}

func (f *fakeAuthAPI) CurrentUser(ctx context.Context, token string) (user.User, error) {
	f.currentCalls++
	if f.currentFn == nil {
		return user.User{}, errors.New("unexpected CurrentUser call")
	}
	return f.currentFn(ctx, token)
}

func demoUser() user.User {
	return user.User{ID: "user-1", FirstName: "John", LastName: "Doe", Email: "john.doe@example.com", Role: user.RoleUser, IsActive: true}
}

func TestRestore_NoStoredToken(t *testing.T) {
	api := &fakeAuthAPI{}
	ts := tokens.NewMemoryStorage()

	s := NewStore(context.Background(), api, ts, discardLogger())

	require.False(t, s.Loading())
	_, ok := s.User()
	require.False(t, ok)
	require.Zero(t, api.currentCalls, "no token must mean no lookup")
}

func TestRestore_ValidToken(t *testing.T) {
	want := demoUser()
	api := &fakeAuthAPI{
		currentFn: func(_ context.Context, token string) (user.User, error) {
			require.Equal(t, "stored-token", token)
			return want, nil
		},
	}
	ts := tokens.NewMemoryStorage()
	require.NoError(t, ts.Save("stored-token"))

	s := NewStore(context.Background(), api, ts, discardLogger())

	require.False(t, s.Loading())
	got, ok := s.User()
	require.True(t, ok)
	require.Equal(t, want, got)

	tok, err := ts.Load()
	require.NoError(t, err)
	require.Equal(t, "stored-token", tok, "a valid token stays stored")
}

func TestRestore_RejectedToken(t *testing.T) {
	api := &fakeAuthAPI{
		currentFn: func(context.Context, string) (user.User, error) {
			return user.User{}, auth.ErrInvalidToken
		},
	}
	ts := tokens.NewMemoryStorage()
	require.NoError(t, ts.Save("expired-token"))

	s := NewStore(context.Background(), api, ts, discardLogger())

	require.False(t, s.Loading())
	_, ok := s.User()
	require.False(t, ok)

	tok, err := ts.Load()
	require.NoError(t, err)
	require.Empty(t, tok, "a rejected token is cleared")
}

func TestLogin_Success(t *testing.T) {
	want := demoUser()
	api := &fakeAuthAPI{
		loginFn: func(_ context.Context, email, password string) (auth.Credentials, error) {
			require.Equal(t, "john.doe@example.com", email)
			require.Equal(t, "password123", password)
			return auth.Credentials{User: want, Token: "issued-token"}, nil
		},
	}
	ts := tokens.NewMemoryStorage()
	s := NewStore(context.Background(), api, ts, discardLogger())

	got, err := s.Login(context.Background(), "john.doe@example.com", "password123")
	require.NoError(t, err)
	require.Equal(t, want, got)

	u, ok := s.User()
	require.True(t, ok)
	require.Equal(t, want, u)

	tok, err := ts.Load()
	require.NoError(t, err)
	require.Equal(t, "issued-token", tok)
}

func TestLogin_FailurePropagates(t *testing.T) {
	api := &fakeAuthAPI{
		loginFn: func(context.Context, string, string) (auth.Credentials, error) {
			return auth.Credentials{}, auth.ErrInvalidCredentials
		},
	}
	ts := tokens.NewMemoryStorage()
	s := NewStore(context.Background(), api, ts, discardLogger())

	_, err := s.Login(context.Background(), "john.doe@example.com", "wrong")
	require.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, ok := s.User()
	require.False(t, ok)

	tok, err := ts.Load()
	require.NoError(t, err)
	require.Empty(t, tok)
}

func TestRegister_Success(t *testing.T) {
	want := demoUser()
	api := &fakeAuthAPI{
		registerFn: func(_ context.Context, in auth.RegisterInput) (auth.Credentials, error) {
			require.Equal(t, "john.doe@example.com", in.Email)
			return auth.Credentials{User: want, Token: "fresh-token"}, nil
		},
	}
	ts := tokens.NewMemoryStorage()
	s := NewStore(context.Background(), api, ts, discardLogger())

	got, err := s.Register(context.Background(), auth.RegisterInput{
		FirstName: "John", LastName: "Doe",
		Email: "john.doe@example.com", Password: "password123",
	})
	require.NoError(t, err)
	require.Equal(t, want, got)

	tok, err := ts.Load()
	require.NoError(t, err)
	require.Equal(t, "fresh-token", tok)
}

func TestLogout_ClearsUserAndToken(t *testing.T) {
	api := &fakeAuthAPI{
		loginFn: func(context.Context, string, string) (auth.Credentials, error) {
			return auth.Credentials{User: demoUser(), Token: "issued-token"}, nil
		},
	}
	ts := tokens.NewMemoryStorage()
	s := NewStore(context.Background(), api, ts, discardLogger())

	_, err := s.Login(context.Background(), "john.doe@example.com", "password123")
	require.NoError(t, err)

	s.Logout()

	_, ok := s.User()
	require.False(t, ok)

	tok, err := ts.Load()
	require.NoError(t, err)
	require.Empty(t, tok)
}
