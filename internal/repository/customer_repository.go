package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/syedsmuzakkir/Gym-Portal/internal/db"
	"github.com/syedsmuzakkir/Gym-Portal/internal/domain"
	"github.com/syedsmuzakkir/Gym-Portal/internal/store"
)

type CustomerRepository struct {
	DB *db.Store
}

func (r CustomerRepository) col() store.Collection[domain.Customer] {
	return store.New(r.DB, colCustomers, func(c domain.Customer) int64 { return c.ID }, seedCustomers)
}

func (r CustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	return r.col().Load()
}

func (r CustomerRepository) Get(ctx context.Context, id int64) (*domain.Customer, error) {
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

type CreateCustomerParams struct {
	Name         string
	Email        string
	Phone        string
	Address      string
	Status       domain.RecordStatus
	JoinDate     string
	Subscription *domain.Subscription
}

func (r CustomerRepository) Create(ctx context.Context, p CreateCustomerParams) (*domain.Customer, error) {
	var created domain.Customer
	err := r.col().Mutate(func(alloc *store.Alloc, items []domain.Customer) ([]domain.Customer, error) {
		id, err := alloc.NextID()
		if err != nil {
			return nil, err
		}
		created = domain.Customer{
			ID:           id,
			CustomerID:   displayCode("CUST", id),
			Name:         p.Name,
			Email:        p.Email,
			Phone:        p.Phone,
			Address:      p.Address,
			Status:       p.Status,
			JoinDate:     p.JoinDate,
			Subscription: p.Subscription,
			TotalPaid:    decimal.Zero,
			LastPayment:  nil,
		}
		if created.Status == "" {
			created.Status = domain.StatusActive
		}
		return append(items, created), nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateCustomerParams is a shallow merge: a present field overwrites, a nil
// field is untouched. Subscription in particular is replaced wholesale; a
// caller changing one subscription field must send the whole object.
type UpdateCustomerParams struct {
	Name         *string
	Email        *string
	Phone        *string
	Address      *string
	Status       *domain.RecordStatus
	JoinDate     *string
	Subscription *domain.Subscription
	TotalPaid    *decimal.Decimal
	LastPayment  *string
}

func (r CustomerRepository) Update(ctx context.Context, id int64, p UpdateCustomerParams) (*domain.Customer, error) {
	var updated *domain.Customer
	err := r.col().Mutate(func(_ *store.Alloc, items []domain.Customer) ([]domain.Customer, error) {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			c := &items[i]
			if p.Name != nil {
				c.Name = *p.Name
			}
			if p.Email != nil {
				c.Email = *p.Email
			}
			if p.Phone != nil {
				c.Phone = *p.Phone
			}
			if p.Address != nil {
				c.Address = *p.Address
			}
			if p.Status != nil {
				c.Status = *p.Status
			}
			if p.JoinDate != nil {
				c.JoinDate = *p.JoinDate
			}
			if p.Subscription != nil {
				c.Subscription = p.Subscription
			}
			if p.TotalPaid != nil {
				c.TotalPaid = *p.TotalPaid
			}
			if p.LastPayment != nil {
				c.LastPayment = p.LastPayment
			}
			out := *c
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

func (r CustomerRepository) Delete(ctx context.Context, id int64) error {
	return r.col().Mutate(func(_ *store.Alloc, items []domain.Customer) ([]domain.Customer, error) {
		for i := range items {
			if items[i].ID == id {
				return append(items[:i], items[i+1:]...), nil
			}
		}
		return nil, ErrNotFound
	})
}

// Plans returns the static subscription plan catalog.
func (r CustomerRepository) Plans(ctx context.Context) []domain.Plan {
	return subscriptionPlans()
}
