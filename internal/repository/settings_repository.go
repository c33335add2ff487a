package repository

import (
	"context"
	"time"

	"github.com/syedsmuzakkir/Gym-Portal/internal/db"
	"github.com/syedsmuzakkir/Gym-Portal/internal/domain"
	"github.com/syedsmuzakkir/Gym-Portal/internal/store"
)

// SettingsRepository persists the singleton settings record as a
// one-element collection blob.
type SettingsRepository struct {
	DB *db.Store
}

func (r SettingsRepository) col() store.Collection[domain.Settings] {
	return store.New(r.DB, colSettings, func(domain.Settings) int64 { return 1 }, seedSettings)
}

func (r SettingsRepository) Get(ctx context.Context) (*domain.Settings, error) {
	items, err := r.col().Load()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNotFound
	}
	return &items[0], nil
}

func (r SettingsRepository) Save(ctx context.Context, s domain.Settings) (*domain.Settings, error) {
	s.UpdatedAt = time.Now().UTC()
	if err := r.col().Save([]domain.Settings{s}); err != nil {
		return nil, err
	}
	return &s, nil
}

func seedSettings() []domain.Settings {
	return []domain.Settings{{
		PortalName:        "FitZone Gym Management",
		ContactEmail:      "admin@fitzonegym.com",
		ContactPhone:      "+1 (555) 123-4567",
		Address:           "123 Fitness Street, Gym City, GC 12345",
		Currency:          "USD",
		EnabledGateways:   []string{"razorpay", "stripe", "cash"},
		DefaultGateway:    "razorpay",
		RequireMemberCode: true,
		AutoCheckout:      true,
		MaxSessionMinutes: 240,
	}}
}
