package repository

import (
	"context"

	"github.com/syedsmuzakkir/Gym-Portal/internal/db"
	"github.com/syedsmuzakkir/Gym-Portal/internal/domain"
	"github.com/syedsmuzakkir/Gym-Portal/internal/store"
	"golang.org/x/crypto/bcrypt"
)

type UserRepository struct {
	DB *db.Store
}

func (r UserRepository) col() store.Collection[domain.User] {
	return store.New(r.DB, colUsers, func(u domain.User) int64 { return u.ID }, seedUsers)
}

func (r UserRepository) List(ctx context.Context) ([]domain.User, error) {
	return r.col().Load()
}

func (r UserRepository) Get(ctx context.Context, id int64) (*domain.User, error) {
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

// GetByIdentifier matches a login identifier against email or phone.
func (r UserRepository) GetByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	items, err := r.col().Load()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].Email == identifier || items[i].Phone == identifier {
			return &items[i], nil
		}
	}
	return nil, ErrNotFound
}

// seedUsers builds the fixed credential list. Passwords are hashed at seed
// time so the stored blob never contains plaintext.
func seedUsers() []domain.User {
	users := []struct {
		id       int64
		name     string
		email    string
		phone    string
		role     domain.UserRole
		password string
	}{
		{1, "System Administrator", "admin@gmail.com", "+1234567890", domain.RoleAdmin, "admin123"},
		{2, "Department Manager", "manager@gmail.com", "+1234567891", domain.RoleManager, "manager123"},
		{3, "Staff Employee", "employee@gmail.com", "+1234567892", domain.RoleEmployee, "employee123"},
	}
	out := make([]domain.User, 0, len(users))
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			// bcrypt only fails on invalid cost; the cost here is constant.
			panic(err)
		}
		out = append(out, domain.User{
			ID: u.id, Name: u.name, Email: u.email, Phone: u.phone,
			Role: u.role, PasswordHash: string(hash),
		})
	}
	return out
}
