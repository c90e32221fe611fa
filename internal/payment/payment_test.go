package payment

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateIntent(t *testing.T) {
	svc := NewService(0)

	intent, err := svc.CreateIntent(context.Background(), 599.97)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(intent.ID, "pi_"))
	require.True(t, strings.HasPrefix(intent.ClientSecret, "mock_client_secret_"))
	require.InDelta(t, 599.97, intent.Amount, 1e-9)
}

func TestCreateIntent_DistinctSecrets(t *testing.T) {
	svc := NewService(0)

	a, err := svc.CreateIntent(context.Background(), 10)
	require.NoError(t, err)
	b, err := svc.CreateIntent(context.Background(), 10)
	require.NoError(t, err)
	require.NotEqual(t, a.ClientSecret, b.ClientSecret)
}

func TestConfirm_AlwaysSucceeds(t *testing.T) {
	svc := NewService(0)

	ok, err := svc.Confirm(context.Background(), "pi_whatever")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestCancelledContext(t *testing.T) {
	svc := NewService(0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.CreateIntent(ctx, 10)
	require.ErrorIs(t, err, context.Canceled)
}
