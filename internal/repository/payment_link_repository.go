package repository

import (
	"context"
	"time"

	"github.com/syedsmuzakkir/Gym-Portal/internal/db"
	"github.com/syedsmuzakkir/Gym-Portal/internal/domain"
	"github.com/syedsmuzakkir/Gym-Portal/internal/store"
)

type PaymentLinkRepository struct {
	DB *db.Store
}

func (r PaymentLinkRepository) col() store.Collection[domain.PaymentLink] {
	return store.New(r.DB, colPaymentLinks, func(l domain.PaymentLink) int64 { return l.ID }, seedPaymentLinks)
}

// List returns all links with the time-derived status applied: a stored
// "active" link past its expiry date reads as expired. The stored field is
// not rewritten; expiry is a property of now, not of the record.
func (r PaymentLinkRepository) List(ctx context.Context, now time.Time) ([]domain.PaymentLink, error) {
	items, err := r.col().Load()
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Status = effectiveLinkStatus(items[i], now)
	}
	return items, nil
}

func (r PaymentLinkRepository) Get(ctx context.Context, id int64, now time.Time) (*domain.PaymentLink, error) {
	items, err := r.col().Load()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			items[i].Status = effectiveLinkStatus(items[i], now)
			return &items[i], nil
		}
	}
	return nil, ErrNotFound
}

// Create persists l after allocating its id and year-scoped link id.
func (r PaymentLinkRepository) Create(ctx context.Context, l domain.PaymentLink, year int) (*domain.PaymentLink, error) {
	err := r.col().Mutate(func(alloc *store.Alloc, items []domain.PaymentLink) ([]domain.PaymentLink, error) {
		id, err := alloc.NextID()
		if err != nil {
			return nil, err
		}
		num, err := alloc.NextNumber()
		if err != nil {
			return nil, err
		}
		l.ID = id
		l.LinkID = documentNumber("PL", year, num)
		l.URL = "https://pay.gov-portal.com/link/" + l.LinkID
		return append(items, l), nil
	})
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// RecordClick bumps the click counter.
func (r PaymentLinkRepository) RecordClick(ctx context.Context, id int64) (*domain.PaymentLink, error) {
	var updated *domain.PaymentLink
	err := r.col().Mutate(func(_ *store.Alloc, items []domain.PaymentLink) ([]domain.PaymentLink, error) {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			items[i].Clicks++
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

// UpdateStatus records a terminal status (paid or cancelled).
func (r PaymentLinkRepository) UpdateStatus(ctx context.Context, id int64, status domain.LinkStatus) (*domain.PaymentLink, error) {
	var updated *domain.PaymentLink
	err := r.col().Mutate(func(_ *store.Alloc, items []domain.PaymentLink) ([]domain.PaymentLink, error) {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			items[i].Status = status
			if status == domain.LinkPaid {
				items[i].Paid = true
			}
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

func effectiveLinkStatus(l domain.PaymentLink, now time.Time) domain.LinkStatus {
	if l.Status != domain.LinkActive {
		return l.Status
	}
	expiry, err := time.Parse(domain.DateLayout, l.ExpiryDate)
	if err != nil {
		return l.Status
	}
	if now.Format(domain.DateLayout) > expiry.Format(domain.DateLayout) {
		return domain.LinkExpired
	}
	return l.Status
}
