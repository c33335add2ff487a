package gateway

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

// Stripe is the simulated Stripe processor. Rejections use Stripe's
// card-declined phrasing.
type Stripe struct {
	Latency     time.Duration
	FailureRate float64
	Rand        *rand.Rand
	Sleep       func(ctx context.Context, d time.Duration) error
}

func NewStripe() *Stripe {
	return &Stripe{
		Latency:     2 * time.Second,
		FailureRate: 0.1,
		Rand:        rand.New(rand.NewSource(time.Now().UnixNano())),
		Sleep:       sleepCtx,
	}
}

func (g *Stripe) Name() string { return "stripe" }

func (g *Stripe) Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	if err := g.Sleep(ctx, g.Latency); err != nil {
		return nil, err
	}
	if g.Rand.Float64() < g.FailureRate {
		return nil, &Error{Provider: "stripe", Message: "Payment declined. Please check your card details."}
	}
	id := fmt.Sprintf("pi_%d_%s", time.Now().UnixMilli(), shortID())
	return &ChargeResult{
		TransactionID: id,
		Raw: map[string]any{
			"id":             id,
			"status":         "succeeded",
			"payment_method": "card_" + shortID(),
		},
	}, nil
}

func (g *Stripe) CreatePaymentLink(ctx context.Context, req LinkRequest) (*LinkResult, error) {
	if err := g.Sleep(ctx, g.Latency/2); err != nil {
		return nil, err
	}
	id := fmt.Sprintf("plink_%d", time.Now().UnixMilli())
	return &LinkResult{ID: id, URL: "https://checkout.stripe.com/pay/" + id}, nil
}
