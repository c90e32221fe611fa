package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"rimss/internal/domain/user"
)

const testPassword = "password123"

func testManager(ttl time.Duration) *JWTManager {
	return NewJWTManager(JWTConfig{Issuer: "rimss-test", Secret: "test-secret", TTL: ttl})
}

func seededRepo(t *testing.T) *UserRepo {
	t.Helper()
	hash, err := HashPassword(testPassword)
	require.NoError(t, err)
	return NewUserRepo([]user.User{
		{
			ID:           "user-1",
			FirstName:    "John",
			LastName:     "Doe",
			Email:        "john.doe@example.com",
			PasswordHash: hash,
			Role:         user.RoleUser,
			IsActive:     true,
		},
		{
			ID:           "user-2",
			Email:        "dormant@example.com",
			PasswordHash: hash,
			Role:         user.RoleUser,
			IsActive:     false,
		},
	})
}

func testService(t *testing.T) *Service {
	t.Helper()
	return NewService(seededRepo(t), testManager(time.Hour), 0)
}

func TestLogin_Success(t *testing.T) {
	svc := testService(t)

	creds, err := svc.Login(context.Background(), "john.doe@example.com", testPassword)
	require.NoError(t, err)
	require.Equal(t, "user-1", creds.User.ID)
	require.NotEmpty(t, creds.Token)

	claims, err := testManager(time.Hour).Parse(creds.Token)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
	require.Equal(t, user.RoleUser, claims.Role)
}

func TestLogin_EmailIsCaseInsensitive(t *testing.T) {
	svc := testService(t)

	creds, err := svc.Login(context.Background(), "John.Doe@Example.com", testPassword)
	require.NoError(t, err)
	require.Equal(t, "user-1", creds.User.ID)
}

func TestLogin_Failures(t *testing.T) {
	svc := testService(t)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "john.doe@example.com", "nope"},
		{"unknown email", "ghost@example.com", testPassword},
		{"inactive account", "dormant@example.com", testPassword},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tc.email, tc.password)
			require.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestRegister_CreatesLoginableUser(t *testing.T) {
	svc := testService(t)

	creds, err := svc.Register(context.Background(), RegisterInput{
		FirstName: "Jane",
		LastName:  "Smith",
		Email:     "jane.smith@example.com",
		Password:  "s3cret-pass",
	})
	require.NoError(t, err)
	require.NotEmpty(t, creds.User.ID)
	require.Equal(t, user.RoleUser, creds.User.Role)
	require.True(t, creds.User.IsActive)
	require.NotEmpty(t, creds.Token)

	again, err := svc.Login(context.Background(), "jane.smith@example.com", "s3cret-pass")
	require.NoError(t, err)
	require.Equal(t, creds.User.ID, again.User.ID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := testService(t)

	_, err := svc.Register(context.Background(), RegisterInput{
		FirstName: "Impostor",
		LastName:  "Doe",
		Email:     "john.doe@example.com",
		Password:  "whatever1",
	})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestCurrentUser_Roundtrip(t *testing.T) {
	svc := testService(t)

	creds, err := svc.Login(context.Background(), "john.doe@example.com", testPassword)
	require.NoError(t, err)

	u, err := svc.CurrentUser(context.Background(), creds.Token)
	require.NoError(t, err)
	require.Equal(t, creds.User.ID, u.ID)
}

func TestCurrentUser_TamperedToken(t *testing.T) {
	svc := testService(t)

	creds, err := svc.Login(context.Background(), "john.doe@example.com", testPassword)
	require.NoError(t, err)

	_, err = svc.CurrentUser(context.Background(), creds.Token+"x")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestCurrentUser_ExpiredToken(t *testing.T) {
	svc := NewService(seededRepo(t), testManager(-time.Hour), 0)

	creds, err := svc.Login(context.Background(), "john.doe@example.com", testPassword)
	require.NoError(t, err)

	_, err = svc.CurrentUser(context.Background(), creds.Token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestCurrentUser_OrphanedToken(t *testing.T) {
	svc := testService(t)

	// Valid signature, but the subject no longer exists in the directory.
	tok, _, err := testManager(time.Hour).Sign("deleted-user", user.RoleUser)
	require.NoError(t, err)

	_, err = svc.CurrentUser(context.Background(), tok)
	require.ErrorIs(t, err, ErrInvalidToken)
}
