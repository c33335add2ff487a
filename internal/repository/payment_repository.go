package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/syedsmuzakkir/Gym-Portal/internal/db"
	"github.com/syedsmuzakkir/Gym-Portal/internal/domain"
	"github.com/syedsmuzakkir/Gym-Portal/internal/store"
)

type PaymentRepository struct {
	DB *db.Store
}

func (r PaymentRepository) col() store.Collection[domain.Payment] {
	return store.New(r.DB, colPayments, func(p domain.Payment) int64 { return p.ID }, seedPayments)
}

func (r PaymentRepository) List(ctx context.Context) ([]domain.Payment, error) {
	return r.col().Load()
}

func (r PaymentRepository) Get(ctx context.Context, id int64) (*domain.Payment, error) {
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

func (r PaymentRepository) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Payment, error) {
	items, err := r.col().Load()
	if err != nil {
		return nil, err
	}
	out := make([]domain.Payment, 0)
	for _, p := range items {
		if p.CustomerID == customerID {
			out = append(out, p)
		}
	}
	return out, nil
}

// Create persists p after allocating its id and year-scoped transaction id.
func (r PaymentRepository) Create(ctx context.Context, p domain.Payment, year int) (*domain.Payment, error) {
	err := r.col().Mutate(func(alloc *store.Alloc, items []domain.Payment) ([]domain.Payment, error) {
		id, err := alloc.NextID()
		if err != nil {
			return nil, err
		}
		num, err := alloc.NextNumber()
		if err != nil {
			return nil, err
		}
		p.ID = id
		p.TransactionID = documentNumber("TXN", year, num)
		return append(items, p), nil
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateStatus finalizes a payment. A nil gatewayTransactionID keeps the
// one recorded at creation.
func (r PaymentRepository) UpdateStatus(ctx context.Context, id int64, status domain.PaymentStatus, gatewayTransactionID *string) (*domain.Payment, error) {
	var updated *domain.Payment
	err := r.col().Mutate(func(_ *store.Alloc, items []domain.Payment) ([]domain.Payment, error) {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			items[i].Status = status
			if gatewayTransactionID != nil {
				items[i].GatewayTransactionID = gatewayTransactionID
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

// PaymentStats are completed-only money aggregates plus status counts.
type PaymentStats struct {
	Total       int    `json:"total"`
	Completed   int    `json:"completed"`
	Pending     int    `json:"pending"`
	Failed      int    `json:"failed"`
	TodayCount  int    `json:"todayCount"`
	TodayAmount string `json:"todayAmount"`
	MonthAmount string `json:"monthAmount"`
	TotalAmount string `json:"totalAmount"`
	TotalFees   string `json:"totalFees"`
	NetAmount   string `json:"netAmount"`
}

// Stats projects counters and sums for the day and month containing now.
func (r PaymentRepository) Stats(ctx context.Context, now time.Time) (*PaymentStats, error) {
	items, err := r.col().Load()
	if err != nil {
		return nil, err
	}
	day := now.Format(domain.DateLayout)
	month := now.Format("2006-01")

	s := PaymentStats{Total: len(items)}
	todayAmount := decimal.Zero
	monthAmount := decimal.Zero
	totalAmount := decimal.Zero
	totalFees := decimal.Zero
	netAmount := decimal.Zero

	for _, p := range items {
		switch p.Status {
		case domain.PaymentCompleted:
			s.Completed++
			totalAmount = totalAmount.Add(p.Amount)
			totalFees = totalFees.Add(p.Fees)
			netAmount = netAmount.Add(p.NetAmount)
		case domain.PaymentPending:
			s.Pending++
		case domain.PaymentFailed:
			s.Failed++
		}
		if p.Date.Format(domain.DateLayout) == day {
			s.TodayCount++
			if p.Status == domain.PaymentCompleted {
				todayAmount = todayAmount.Add(p.Amount)
			}
		}
		if p.Date.Format("2006-01") == month && p.Status == domain.PaymentCompleted {
			monthAmount = monthAmount.Add(p.Amount)
		}
	}

	s.TodayAmount = todayAmount.String()
	s.MonthAmount = monthAmount.String()
	s.TotalAmount = totalAmount.String()
	s.TotalFees = totalFees.String()
	s.NetAmount = netAmount.String()
	return &s, nil
}
