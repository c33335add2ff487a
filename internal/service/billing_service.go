package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"github.com/syedsmuzakkir/Gym-Portal/internal/domain"
	"github.com/syedsmuzakkir/Gym-Portal/internal/repository"
)

var ErrNoInvoiceItems = errors.New("invoice requires at least one item")

// Payment terms: invoices fall due 15 days after issue.
const invoiceDueDays = 15

// BillingService generates invoices for customers.
type BillingService struct {
	Invoices  repository.InvoiceRepository
	Customers repository.CustomerRepository
	Logger    *slog.Logger

	Now func() time.Time
}

func (s BillingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// GenerateInvoice creates a pending invoice for the customer. The amount is
// the sum of price*quantity over the items.
func (s BillingService) GenerateInvoice(ctx context.Context, customerID int64, items []domain.InvoiceItem) (*domain.Invoice, error) {
	if len(items) == 0 {
		return nil, ErrNoInvoiceItems
	}
	customer, err := s.Customers.Get(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("customer %d: %w", customerID, err)
	}

	amount := decimal.Zero
	for _, it := range items {
		amount = amount.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}

	now := s.now()
	inv := domain.Invoice{
		CustomerID:   customerID,
		CustomerName: customer.Name,
		Amount:       amount,
		Status:       domain.InvoicePending,
		IssueDate:    now.Format(domain.DateLayout),
		DueDate:      now.AddDate(0, 0, invoiceDueDays).Format(domain.DateLayout),
		Items:        items,
	}
	created, err := s.Invoices.Create(ctx, inv, now.Year())
	if err != nil {
		return nil, err
	}
	s.Logger.Info("invoice generated",
		"invoiceNumber", created.InvoiceNumber, "customerId", customerID, "amount", created.Amount)
	return created, nil
}
