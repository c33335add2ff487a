package gateway

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Razorpay is the simulated Razorpay processor. It keeps the live client's
// latency and failure profile: a fixed settlement delay and a configurable
// failure rate, with Razorpay's retry phrasing on rejection.
type Razorpay struct {
	Latency     time.Duration
	FailureRate float64
	Rand        *rand.Rand
	Sleep       func(ctx context.Context, d time.Duration) error
}

func NewRazorpay() *Razorpay {
	return &Razorpay{
		Latency:     2 * time.Second,
		FailureRate: 0.1,
		Rand:        rand.New(rand.NewSource(time.Now().UnixNano())),
		Sleep:       sleepCtx,
	}
}

func (g *Razorpay) Name() string { return "razorpay" }

func (g *Razorpay) Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	if err := g.Sleep(ctx, g.Latency); err != nil {
		return nil, err
	}
	if g.Rand.Float64() < g.FailureRate {
		return nil, &Error{Provider: "razorpay", Message: "Payment failed. Please try again."}
	}
	id := fmt.Sprintf("rzp_%d_%s", time.Now().UnixMilli(), shortID())
	return &ChargeResult{
		TransactionID: id,
		Raw: map[string]any{
			"razorpay_payment_id": id,
			"razorpay_order_id":   fmt.Sprintf("order_%d", time.Now().UnixMilli()),
			"razorpay_signature":  "sig_" + shortID(),
		},
	}, nil
}

func (g *Razorpay) CreatePaymentLink(ctx context.Context, req LinkRequest) (*LinkResult, error) {
	if err := g.Sleep(ctx, g.Latency/2); err != nil {
		return nil, err
	}
	id := fmt.Sprintf("rzp_link_%d", time.Now().UnixMilli())
	return &LinkResult{ID: id, URL: "https://rzp.io/" + id}, nil
}

func shortID() string {
	return uuid.NewString()[:8]
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
