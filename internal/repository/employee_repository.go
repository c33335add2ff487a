package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/syedsmuzakkir/Gym-Portal/internal/db"
	"github.com/syedsmuzakkir/Gym-Portal/internal/domain"
	"github.com/syedsmuzakkir/Gym-Portal/internal/store"
)

type EmployeeRepository struct {
	DB *db.Store
}

func (r EmployeeRepository) col() store.Collection[domain.Employee] {
	return store.New(r.DB, colEmployees, func(e domain.Employee) int64 { return e.ID }, seedEmployees)
}

func (r EmployeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	return r.col().Load()
}

func (r EmployeeRepository) Get(ctx context.Context, id int64) (*domain.Employee, error) {
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

type CreateEmployeeParams struct {
	Name             string
	Email            string
	Phone            string
	Department       string
	Position         string
	Status           domain.RecordStatus
	JoinDate         string
	Salary           decimal.Decimal
	Address          string
	EmergencyContact domain.EmergencyContact
}

func (r EmployeeRepository) Create(ctx context.Context, p CreateEmployeeParams) (*domain.Employee, error) {
	var created domain.Employee
	err := r.col().Mutate(func(alloc *store.Alloc, items []domain.Employee) ([]domain.Employee, error) {
		id, err := alloc.NextID()
		if err != nil {
			return nil, err
		}
		created = domain.Employee{
			ID:               id,
			EmployeeID:       displayCode("EMP", id),
			Name:             p.Name,
			Email:            p.Email,
			Phone:            p.Phone,
			Department:       p.Department,
			Position:         p.Position,
			Status:           p.Status,
			JoinDate:         p.JoinDate,
			Salary:           p.Salary,
			Address:          p.Address,
			EmergencyContact: p.EmergencyContact,
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

// UpdateEmployeeParams carries the fields to overwrite; nil fields are left
// untouched. Nested EmergencyContact is replaced wholesale when present.
type UpdateEmployeeParams struct {
	Name             *string
	Email            *string
	Phone            *string
	Department       *string
	Position         *string
	Status           *domain.RecordStatus
	JoinDate         *string
	Salary           *decimal.Decimal
	Address          *string
	EmergencyContact *domain.EmergencyContact
}

func (r EmployeeRepository) Update(ctx context.Context, id int64, p UpdateEmployeeParams) (*domain.Employee, error) {
	var updated *domain.Employee
	err := r.col().Mutate(func(_ *store.Alloc, items []domain.Employee) ([]domain.Employee, error) {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			e := &items[i]
			if p.Name != nil {
				e.Name = *p.Name
			}
			if p.Email != nil {
				e.Email = *p.Email
			}
			if p.Phone != nil {
				e.Phone = *p.Phone
			}
			if p.Department != nil {
				e.Department = *p.Department
			}
			if p.Position != nil {
				e.Position = *p.Position
			}
			if p.Status != nil {
				e.Status = *p.Status
			}
			if p.JoinDate != nil {
				e.JoinDate = *p.JoinDate
			}
			if p.Salary != nil {
				e.Salary = *p.Salary
			}
			if p.Address != nil {
				e.Address = *p.Address
			}
			if p.EmergencyContact != nil {
				e.EmergencyContact = *p.EmergencyContact
			}
			out := *e
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

func (r EmployeeRepository) Delete(ctx context.Context, id int64) error {
	return r.col().Mutate(func(_ *store.Alloc, items []domain.Employee) ([]domain.Employee, error) {
		for i := range items {
			if items[i].ID == id {
				return append(items[:i], items[i+1:]...), nil
			}
		}
		return nil, ErrNotFound
	})
}
