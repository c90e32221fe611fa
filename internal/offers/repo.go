package offers

import (
	"context"
	"time"

	"rimss/internal/domain/offer"
	"rimss/internal/util"
)

type Repo struct {
	offers []offer.Offer
	delay  time.Duration
}

func NewRepo(seeded []offer.Offer, delay time.Duration) *Repo {
	return &Repo{offers: seeded, delay: delay}
}

// GetAll lists active offers only.
func (r *Repo) GetAll(ctx context.Context) ([]offer.Offer, error) {
	if err := util.SimulateLatency(ctx, r.delay); err != nil {
		return nil, err
	}

	var out []offer.Offer
	for _, o := range r.offers {
		if o.IsActive {
			out = append(out, o)
		}
	}
	return out, nil
}
