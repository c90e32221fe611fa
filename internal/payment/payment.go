// Package payment is a mock Stripe-shaped payment collaborator: create an
// intent for an amount, then confirm it. Every confirmation succeeds.
package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"rimss/internal/util"
)

type Intent struct {
	ID           string  `json:"id"`
	ClientSecret string  `json:"client_secret"`
	Amount       float64 `json:"amount"`
}

type Service struct {
	delay time.Duration
}

func NewService(delay time.Duration) *Service {
	return &Service{delay: delay}
}

func (s *Service) CreateIntent(ctx context.Context, amount float64) (Intent, error) {
	if err := util.SimulateLatency(ctx, s.delay); err != nil {
		return Intent{}, err
	}

	secret, err := util.RandomToken(24)
	if err != nil {
		return Intent{}, fmt.Errorf("client secret: %w", err)
	}
	return Intent{
		ID:           "pi_" + uuid.NewString(),
		ClientSecret: "mock_client_secret_" + secret,
		Amount:       amount,
	}, nil
}

func (s *Service) Confirm(ctx context.Context, intentID string) (bool, error) {
	if err := util.SimulateLatency(ctx, s.delay); err != nil {
		return false, err
	}
	return true, nil
}
