package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/syedsmuzakkir/Gym-Portal/internal/config"
	"github.com/syedsmuzakkir/Gym-Portal/internal/db"
	"github.com/syedsmuzakkir/Gym-Portal/internal/domain"
	"github.com/syedsmuzakkir/Gym-Portal/internal/gateway"
	"github.com/syedsmuzakkir/Gym-Portal/internal/repository"
)

func newTestStore(t *testing.T) *db.Store {
	t.Helper()
	cfg := config.Config{DataPath: filepath.Join(t.TempDir(), "test.db")}
	s, err := db.New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(s.Close)
	return s
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeGateway settles or rejects deterministically.
type fakeGateway struct {
	fail    bool
	charges int
}

func (g *fakeGateway) Name() string { return "fake" }

func (g *fakeGateway) Charge(ctx context.Context, req gateway.ChargeRequest) (*gateway.ChargeResult, error) {
	g.charges++
	if g.fail {
		return nil, &gateway.Error{Provider: "fake", Message: "Payment failed. Please try again."}
	}
	return &gateway.ChargeResult{TransactionID: "fake_txn_1"}, nil
}

func (g *fakeGateway) CreatePaymentLink(ctx context.Context, req gateway.LinkRequest) (*gateway.LinkResult, error) {
	return &gateway.LinkResult{ID: "fake_link_1"}, nil
}

func newPaymentService(t *testing.T, gw gateway.Gateway) PaymentService {
	t.Helper()
	store := newTestStore(t)
	return PaymentService{
		Payments:  repository.PaymentRepository{DB: store},
		Customers: repository.CustomerRepository{DB: store},
		Invoices:  repository.InvoiceRepository{DB: store},
		Links:     repository.PaymentLinkRepository{DB: store},
		Gateways:  gateway.Registry{"razorpay": gw, "stripe": gw},
		FeePct:    0.03,
		Logger:    testLogger(),
		Now:       func() time.Time { return time.Date(2024, 12, 20, 10, 0, 0, 0, time.UTC) },
	}
}

func TestProcess_CashSettlesImmediately(t *testing.T) {
	svc := newPaymentService(t, &fakeGateway{})
	ctx := context.Background()

	p, err := svc.Process(ctx, ProcessPaymentInput{
		CustomerID: 1,
		Amount:     decimal.NewFromInt(99),
		Method:     domain.MethodCash,
	})
	if err != nil {
		t.Fatalf("Process() error: %v", err)
	}
	if p.Status != domain.PaymentCompleted {
		t.Fatalf("cash payment must complete immediately, got %s", p.Status)
	}
	if !p.Fees.IsZero() {
		t.Fatalf("cash payment must carry no fees, got %s", p.Fees)
	}
	if !p.NetAmount.Equal(p.Amount) {
		t.Fatalf("cash net must equal amount: %s vs %s", p.NetAmount, p.Amount)
	}

	// Completion rolls into the customer's totals.
	customer, err := svc.Customers.Get(ctx, 1)
	if err != nil {
		t.Fatalf("Get customer: %v", err)
	}
	if customer.LastPayment == nil || *customer.LastPayment != "2024-12-20" {
		t.Fatalf("customer lastPayment not updated: %v", customer.LastPayment)
	}
}

func TestProcess_GatewayFeeSplit(t *testing.T) {
	svc := newPaymentService(t, &fakeGateway{})

	p, err := svc.Process(context.Background(), ProcessPaymentInput{
		CustomerID: 1,
		Amount:     decimal.NewFromInt(99),
		Method:     domain.MethodRazorpay,
	})
	if err != nil {
		t.Fatalf("Process() error: %v", err)
	}
	if p.Status != domain.PaymentProcessing {
		t.Fatalf("gateway payment must start processing, got %s", p.Status)
	}
	if want := decimal.NewFromFloat(2.97); !p.Fees.Equal(want) {
		t.Fatalf("fees = %s, want %s", p.Fees, want)
	}
	if want := decimal.NewFromFloat(96.03); !p.NetAmount.Equal(want) {
		t.Fatalf("net = %s, want %s", p.NetAmount, want)
	}
}

func TestProcess_UnknownMethod(t *testing.T) {
	svc := newPaymentService(t, &fakeGateway{})

	_, err := svc.Process(context.Background(), ProcessPaymentInput{
		CustomerID: 1,
		Amount:     decimal.NewFromInt(10),
		Method:     domain.PaymentMethod("bitcoin"),
	})
	if !errors.Is(err, ErrUnknownMethod) {
		t.Fatalf("expected ErrUnknownMethod, got %v", err)
	}
}

func TestSettle_Success(t *testing.T) {
	gw := &fakeGateway{}
	svc := newPaymentService(t, gw)
	ctx := context.Background()

	p, err := svc.Process(ctx, ProcessPaymentInput{
		CustomerID: 1,
		Amount:     decimal.NewFromInt(99),
		Method:     domain.MethodRazorpay,
	})
	if err != nil {
		t.Fatalf("Process() error: %v", err)
	}
	settled, err := svc.Settle(ctx, p.ID)
	if err != nil {
		t.Fatalf("Settle() error: %v", err)
	}
	if settled.Status != domain.PaymentCompleted {
		t.Fatalf("expected completed, got %s", settled.Status)
	}
	if settled.GatewayTransactionID == nil || *settled.GatewayTransactionID != "fake_txn_1" {
		t.Fatalf("gateway transaction id not recorded: %v", settled.GatewayTransactionID)
	}
	if gw.charges != 1 {
		t.Fatalf("expected exactly one charge attempt, got %d", gw.charges)
	}
}

func TestSettle_FailureMarksFailedWithoutRetry(t *testing.T) {
	gw := &fakeGateway{fail: true}
	svc := newPaymentService(t, gw)
	ctx := context.Background()

	p, err := svc.Process(ctx, ProcessPaymentInput{
		CustomerID: 1,
		Amount:     decimal.NewFromInt(50),
		Method:     domain.MethodStripe,
	})
	if err != nil {
		t.Fatalf("Process() error: %v", err)
	}
	_, err = svc.Settle(ctx, p.ID)
	if !gateway.IsGatewayError(err) {
		t.Fatalf("expected gateway error, got %v", err)
	}
	if gw.charges != 1 {
		t.Fatalf("expected a single attempt, got %d", gw.charges)
	}

	stored, err := svc.Payments.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("Get payment: %v", err)
	}
	if stored.Status != domain.PaymentFailed {
		t.Fatalf("rejected payment must be failed, got %s", stored.Status)
	}

	// A failed payment cannot be settled again.
	if _, err := svc.Settle(ctx, p.ID); !errors.Is(err, ErrNotSettleable) {
		t.Fatalf("expected ErrNotSettleable, got %v", err)
	}
}

func TestUpdateStatus_CompletionSettlesLinkedInvoice(t *testing.T) {
	svc := newPaymentService(t, &fakeGateway{})
	ctx := context.Background()

	invoiceID := int64(3) // seed invoice INV-2023-003, pending
	p, err := svc.Process(ctx, ProcessPaymentInput{
		CustomerID: 4,
		Amount:     decimal.NewFromInt(99),
		Method:     domain.MethodBankTransfer,
		InvoiceID:  &invoiceID,
	})
	if err != nil {
		t.Fatalf("Process() error: %v", err)
	}
	if _, err := svc.UpdateStatus(ctx, p.ID, domain.PaymentCompleted, nil); err != nil {
		t.Fatalf("UpdateStatus() error: %v", err)
	}

	inv, err := svc.Invoices.Get(ctx, invoiceID)
	if err != nil {
		t.Fatalf("Get invoice: %v", err)
	}
	if inv.Status != domain.InvoicePaid {
		t.Fatalf("linked invoice must be paid, got %s", inv.Status)
	}
}
