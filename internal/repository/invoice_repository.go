package repository

import (
	"context"

	"github.com/syedsmuzakkir/Gym-Portal/internal/db"
	"github.com/syedsmuzakkir/Gym-Portal/internal/domain"
	"github.com/syedsmuzakkir/Gym-Portal/internal/store"
)

type InvoiceRepository struct {
	DB *db.Store
}

func (r InvoiceRepository) col() store.Collection[domain.Invoice] {
	return store.New(r.DB, colInvoices, func(i domain.Invoice) int64 { return i.ID }, seedInvoices)
}

func (r InvoiceRepository) List(ctx context.Context) ([]domain.Invoice, error) {
	return r.col().Load()
}

func (r InvoiceRepository) Get(ctx context.Context, id int64) (*domain.Invoice, error) {
	items, err := r.col().Load()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r InvoiceRepository) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Invoice, error) {
	items, err := r.col().Load()
	if err != nil {
		return nil, err
	}
	out := make([]domain.Invoice, 0)
	for _, inv := range items {
		if inv.CustomerID == customerID {
			out = append(out, inv)
		}
	}
	return out, nil
}

// Create persists inv after allocating its id and year-scoped invoice number.
func (r InvoiceRepository) Create(ctx context.Context, inv domain.Invoice, year int) (*domain.Invoice, error) {
	err := r.col().Mutate(func(alloc *store.Alloc, items []domain.Invoice) ([]domain.Invoice, error) {
		id, err := alloc.NextID()
		if err != nil {
			return nil, err
		}
		num, err := alloc.NextNumber()
		if err != nil {
			return nil, err
		}
		inv.ID = id
		inv.InvoiceNumber = documentNumber("INV", year, num)
		return append(items, inv), nil
	})
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// MarkPaid finalizes a pending invoice.
func (r InvoiceRepository) MarkPaid(ctx context.Context, id int64, paidDate string) (*domain.Invoice, error) {
	var updated *domain.Invoice
	err := r.col().Mutate(func(_ *store.Alloc, items []domain.Invoice) ([]domain.Invoice, error) {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			items[i].Status = domain.InvoicePaid
			items[i].PaidDate = &paidDate
			out := items[i]
			updated = &out
			return items, nil
		}
		return nil, ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
