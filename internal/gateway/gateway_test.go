package gateway

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func noSleep(ctx context.Context, d time.Duration) error { return nil }

func TestRazorpayCharge_Success(t *testing.T) {
	g := &Razorpay{FailureRate: 0, Rand: rand.New(rand.NewSource(1)), Sleep: noSleep}

	res, err := g.Charge(context.Background(), ChargeRequest{Amount: decimal.NewFromInt(99)})
	if err != nil {
		t.Fatalf("Charge() error: %v", err)
	}
	if !strings.HasPrefix(res.TransactionID, "rzp_") {
		t.Fatalf("unexpected transaction id %q", res.TransactionID)
	}
	if res.Raw["razorpay_payment_id"] != res.TransactionID {
		t.Fatalf("raw payload missing payment id: %+v", res.Raw)
	}
}

func TestRazorpayCharge_Rejection(t *testing.T) {
	g := &Razorpay{FailureRate: 1, Rand: rand.New(rand.NewSource(1)), Sleep: noSleep}

	_, err := g.Charge(context.Background(), ChargeRequest{Amount: decimal.NewFromInt(99)})
	if !IsGatewayError(err) {
		t.Fatalf("expected gateway error, got %v", err)
	}
	var ge *Error
	errors.As(err, &ge)
	if ge.Provider != "razorpay" || ge.Message != "Payment failed. Please try again." {
		t.Fatalf("unexpected rejection: %+v", ge)
	}
}

func TestStripeCharge_Rejection(t *testing.T) {
	g := &Stripe{FailureRate: 1, Rand: rand.New(rand.NewSource(1)), Sleep: noSleep}

	_, err := g.Charge(context.Background(), ChargeRequest{Amount: decimal.NewFromInt(50)})
	var ge *Error
	if !errors.As(err, &ge) {
		t.Fatalf("expected gateway error, got %v", err)
	}
	if ge.Provider != "stripe" || ge.Message != "Payment declined. Please check your card details." {
		t.Fatalf("unexpected rejection: %+v", ge)
	}
}

func TestCharge_CancelledContext(t *testing.T) {
	g := NewRazorpay()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := g.Charge(ctx, ChargeRequest{Amount: decimal.NewFromInt(10)}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRegistry_Lookup(t *testing.T) {
	reg := Registry{"razorpay": NewRazorpay(), "stripe": NewStripe()}

	if _, ok := reg.Lookup("razorpay"); !ok {
		t.Fatal("razorpay should resolve")
	}
	if _, ok := reg.Lookup("cash"); ok {
		t.Fatal("cash has no gateway")
	}
}
