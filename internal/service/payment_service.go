package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"github.com/syedsmuzakkir/Gym-Portal/internal/domain"
	"github.com/syedsmuzakkir/Gym-Portal/internal/gateway"
	"github.com/syedsmuzakkir/Gym-Portal/internal/repository"
)

var (
	ErrUnknownMethod = errors.New("unsupported payment method")
	ErrNotSettleable = errors.New("payment is not awaiting gateway settlement")
)

// PaymentService records payments and drives gateway settlement. Cash
// settles synchronously with no fees; gateway methods are recorded as
// processing with the fee split applied, then finalized by a single
// settlement attempt (or a manual status update for bank transfers).
type PaymentService struct {
	Payments  repository.PaymentRepository
	Customers repository.CustomerRepository
	Invoices  repository.InvoiceRepository
	Links     repository.PaymentLinkRepository
	Gateways  gateway.Registry
	FeePct    float64
	Logger    *slog.Logger

	Now func() time.Time
}

func (s PaymentService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

type ProcessPaymentInput struct {
	CustomerID  int64
	Amount      decimal.Decimal
	Method      domain.PaymentMethod
	Description string
	InvoiceID   *int64
}

// Process records a new payment. For cash the payment completes
// immediately; for every other method it is stored as processing with
// fees = round(amount * FeePct, 2) and net = amount - fees.
func (s PaymentService) Process(ctx context.Context, in ProcessPaymentInput) (*domain.Payment, error) {
	switch in.Method {
	case domain.MethodCash, domain.MethodRazorpay, domain.MethodStripe, domain.MethodBankTransfer:
	default:
		return nil, ErrUnknownMethod
	}

	customer, err := s.Customers.Get(ctx, in.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("customer %d: %w", in.CustomerID, err)
	}

	now := s.now()
	p := domain.Payment{
		CustomerID:   in.CustomerID,
		CustomerName: customer.Name,
		Amount:       in.Amount,
		Method:       in.Method,
		Date:         now,
		Description:  in.Description,
		InvoiceID:    in.InvoiceID,
	}
	if in.Method == domain.MethodCash {
		p.Status = domain.PaymentCompleted
		p.Fees = decimal.Zero
		p.NetAmount = in.Amount
	} else {
		p.Status = domain.PaymentProcessing
		p.Fees = in.Amount.Mul(decimal.NewFromFloat(s.FeePct)).Round(2)
		p.NetAmount = in.Amount.Sub(p.Fees)
	}

	created, err := s.Payments.Create(ctx, p, now.Year())
	if err != nil {
		return nil, err
	}
	if created.Status == domain.PaymentCompleted {
		s.applyCompletion(ctx, created)
	}
	s.Logger.Info("payment recorded",
		"transactionId", created.TransactionID, "method", created.Method, "status", created.Status)
	return created, nil
}

// Settle runs the single gateway attempt for a processing payment. On
// rejection the payment is marked failed and the gateway error is returned;
// re-invoking Process is the caller's decision, never this service's.
func (s PaymentService) Settle(ctx context.Context, id int64) (*domain.Payment, error) {
	p, err := s.Payments.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Status != domain.PaymentProcessing {
		return nil, ErrNotSettleable
	}
	gw, ok := s.Gateways.Lookup(string(p.Method))
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, p.Method)
	}

	result, err := gw.Charge(ctx, gateway.ChargeRequest{
		Amount:      p.Amount,
		Description: p.Description,
		Reference:   p.TransactionID,
	})
	if err != nil {
		if _, uerr := s.Payments.UpdateStatus(ctx, id, domain.PaymentFailed, nil); uerr != nil {
			s.Logger.Error("mark payment failed", "id", id, "err", uerr)
		}
		return nil, err
	}

	updated, err := s.Payments.UpdateStatus(ctx, id, domain.PaymentCompleted, &result.TransactionID)
	if err != nil {
		return nil, err
	}
	s.applyCompletion(ctx, updated)
	s.Logger.Info("payment settled",
		"transactionId", updated.TransactionID, "gatewayTransactionId", result.TransactionID)
	return updated, nil
}

// UpdateStatus finalizes a payment by hand (bank transfers, refunds).
func (s PaymentService) UpdateStatus(ctx context.Context, id int64, status domain.PaymentStatus, gatewayTransactionID *string) (*domain.Payment, error) {
	updated, err := s.Payments.UpdateStatus(ctx, id, status, gatewayTransactionID)
	if err != nil {
		return nil, err
	}
	if status == domain.PaymentCompleted {
		s.applyCompletion(ctx, updated)
	}
	return updated, nil
}

// applyCompletion rolls a completed payment into the customer's totals and
// settles the linked invoice. Failures here are logged, not propagated: the
// payment itself is already recorded.
func (s PaymentService) applyCompletion(ctx context.Context, p *domain.Payment) {
	customer, err := s.Customers.Get(ctx, p.CustomerID)
	if err == nil {
		total := customer.TotalPaid.Add(p.Amount)
		last := p.Date.Format(domain.DateLayout)
		_, err = s.Customers.Update(ctx, p.CustomerID, repository.UpdateCustomerParams{
			TotalPaid:   &total,
			LastPayment: &last,
		})
	}
	if err != nil {
		s.Logger.Error("update customer totals", "customerId", p.CustomerID, "err", err)
	}

	if p.InvoiceID != nil {
		if _, err := s.Invoices.MarkPaid(ctx, *p.InvoiceID, p.Date.Format(domain.DateLayout)); err != nil {
			s.Logger.Error("mark invoice paid", "invoiceId", *p.InvoiceID, "err", err)
		}
	}
}

type CreateLinkInput struct {
	CustomerID  int64
	Amount      decimal.Decimal
	Description string
	ExpiryDate  string
}

// CreateLink issues a new payment link for a customer.
func (s PaymentService) CreateLink(ctx context.Context, in CreateLinkInput) (*domain.PaymentLink, error) {
	customer, err := s.Customers.Get(ctx, in.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("customer %d: %w", in.CustomerID, err)
	}
	now := s.now()
	link := domain.PaymentLink{
		CustomerID:   in.CustomerID,
		CustomerName: customer.Name,
		Amount:       in.Amount,
		Description:  in.Description,
		Status:       domain.LinkActive,
		ExpiryDate:   in.ExpiryDate,
		CreatedDate:  now.Format(domain.DateLayout),
	}
	created, err := s.Links.Create(ctx, link, now.Year())
	if err != nil {
		return nil, err
	}
	s.Logger.Info("payment link created", "linkId", created.LinkID, "customerId", in.CustomerID)
	return created, nil
}
