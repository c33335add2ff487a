package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/syedsmuzakkir/Gym-Portal/internal/domain"
	"github.com/syedsmuzakkir/Gym-Portal/internal/repository"
)

func newBillingService(t *testing.T) BillingService {
	t.Helper()
	store := newTestStore(t)
	return BillingService{
		Invoices:  repository.InvoiceRepository{DB: store},
		Customers: repository.CustomerRepository{DB: store},
		Logger:    testLogger(),
		Now:       func() time.Time { return time.Date(2024, 12, 20, 10, 0, 0, 0, time.UTC) },
	}
}

func TestGenerateInvoice(t *testing.T) {
	svc := newBillingService(t)

	inv, err := svc.GenerateInvoice(context.Background(), 1, []domain.InvoiceItem{
		{Description: "Premium Monthly Subscription", Quantity: 2, Price: decimal.NewFromInt(99)},
		{Description: "Locker Rental", Quantity: 1, Price: decimal.NewFromFloat(12.50)},
	})
	if err != nil {
		t.Fatalf("GenerateInvoice() error: %v", err)
	}
	// Seed invoices run through INV-2023-003 with ids 1-3.
	if inv.InvoiceNumber != "INV-2024-004" {
		t.Fatalf("invoice number = %s, want INV-2024-004", inv.InvoiceNumber)
	}
	if want := decimal.NewFromFloat(210.50); !inv.Amount.Equal(want) {
		t.Fatalf("amount = %s, want %s", inv.Amount, want)
	}
	if inv.Status != domain.InvoicePending {
		t.Fatalf("new invoice must be pending, got %s", inv.Status)
	}
	if inv.IssueDate != "2024-12-20" || inv.DueDate != "2025-01-04" {
		t.Fatalf("dates mismatch: issue %s due %s", inv.IssueDate, inv.DueDate)
	}
	if inv.PaidDate != nil {
		t.Fatalf("new invoice must have no paid date: %v", inv.PaidDate)
	}
}

func TestGenerateInvoice_RequiresItems(t *testing.T) {
	svc := newBillingService(t)

	if _, err := svc.GenerateInvoice(context.Background(), 1, nil); !errors.Is(err, ErrNoInvoiceItems) {
		t.Fatalf("expected ErrNoInvoiceItems, got %v", err)
	}
}

func TestGenerateInvoice_UnknownCustomer(t *testing.T) {
	svc := newBillingService(t)

	_, err := svc.GenerateInvoice(context.Background(), 999, []domain.InvoiceItem{
		{Description: "Day Pass", Quantity: 1, Price: decimal.NewFromInt(15)},
	})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
