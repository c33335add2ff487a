// Package gateway defines the payment-gateway contract and the simulated
// Razorpay/Stripe implementations used in place of live processors.
package gateway

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// Error reports a gateway rejection. The message carries the
// provider-specific phrasing shown to the operator.
type Error struct {
	Provider string
	Message  string
}

func (e *Error) Error() string { return e.Provider + ": " + e.Message }

// IsGatewayError reports whether err is a gateway rejection.
func IsGatewayError(err error) bool {
	var ge *Error
	return errors.As(err, &ge)
}

type ChargeRequest struct {
	Amount      decimal.Decimal
	Currency    string
	Description string
	Reference   string
}

type ChargeResult struct {
	TransactionID string
	Raw           map[string]any
}

type LinkRequest struct {
	Amount      decimal.Decimal
	Description string
	ExpiryDate  string
}

type LinkResult struct {
	ID  string
	URL string
}

// Gateway is a payment processor. Charge is a single attempt: it either
// settles or returns an error, and the caller must not retry automatically.
type Gateway interface {
	Name() string
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
	CreatePaymentLink(ctx context.Context, req LinkRequest) (*LinkResult, error)
}

// Registry resolves a gateway by payment method name.
type Registry map[string]Gateway

func (r Registry) Lookup(method string) (Gateway, bool) {
	g, ok := r[method]
	return g, ok
}
