package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/syedsmuzakkir/Gym-Portal/internal/db"
	"github.com/syedsmuzakkir/Gym-Portal/internal/domain"
	"github.com/syedsmuzakkir/Gym-Portal/internal/store"
)

type MemberCodeRepository struct {
	DB *db.Store
}

func (r MemberCodeRepository) col() store.Collection[domain.MemberCode] {
	return store.New(r.DB, colMemberCodes, func(c domain.MemberCode) int64 { return c.ID }, seedMemberCodes)
}

func (r MemberCodeRepository) List(ctx context.Context) ([]domain.MemberCode, error) {
	return r.col().Load()
}

// FindByCode resolves a scanned string by exact match on either the QR code
// or the barcode value. An active match wins over a retired one holding the
// same string (QR strings repeat across regenerations within a year). Inactive
// codes still resolve when no active match exists; the caller decides whether
// to reject them.
func (r MemberCodeRepository) FindByCode(ctx context.Context, code string) (*domain.MemberCode, error) {
	items, err := r.col().Load()
	if err != nil {
		return nil, err
	}
	var retired *domain.MemberCode
	for i := range items {
		if items[i].QRCode != code && items[i].Barcode != code {
			continue
		}
		if items[i].IsActive {
			return &items[i], nil
		}
		if retired == nil {
			retired = &items[i]
		}
	}
	if retired != nil {
		return retired, nil
	}
	return nil, ErrNotFound
}

// Generate issues a fresh code set for a member. Any previously active code
// for the same member is deactivated, keeping at most one active code per
// member; old rows are kept for audit.
func (r MemberCodeRepository) Generate(ctx context.Context, memberID, memberName string, memberType domain.MemberType, now time.Time) (*domain.MemberCode, error) {
	var created domain.MemberCode
	err := r.col().Mutate(func(alloc *store.Alloc, items []domain.MemberCode) ([]domain.MemberCode, error) {
		for i := range items {
			if items[i].MemberID == memberID && items[i].IsActive {
				items[i].IsActive = false
			}
		}
		id, err := alloc.NextID()
		if err != nil {
			return nil, err
		}
		created = domain.MemberCode{
			ID:            id,
			MemberID:      memberID,
			MemberName:    memberName,
			MemberType:    memberType,
			QRCode:        fmt.Sprintf("QR-%s-%d", memberID, now.Year()),
			Barcode:       fmt.Sprintf("%012d", now.UnixMilli()%1_000_000_000_000),
			IsActive:      true,
			GeneratedDate: now.Format(domain.DateLayout),
		}
		return append(items, created), nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Toggle flips a code between active and inactive.
func (r MemberCodeRepository) Toggle(ctx context.Context, id int64) (*domain.MemberCode, error) {
	var updated *domain.MemberCode
	err := r.col().Mutate(func(_ *store.Alloc, items []domain.MemberCode) ([]domain.MemberCode, error) {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			items[i].IsActive = !items[i].IsActive
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
