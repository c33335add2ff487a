package repository

import (
	"context"
	"time"

	"github.com/syedsmuzakkir/Gym-Portal/internal/db"
	"github.com/syedsmuzakkir/Gym-Portal/internal/domain"
	"github.com/syedsmuzakkir/Gym-Portal/internal/store"
)

type AttendanceRepository struct {
	DB *db.Store
}

func (r AttendanceRepository) col() store.Collection[domain.Attendance] {
	return store.New(r.DB, colAttendance, func(a domain.Attendance) int64 { return a.ID }, seedAttendance)
}

func (r AttendanceRepository) List(ctx context.Context) ([]domain.Attendance, error) {
	return r.col().Load()
}

func (r AttendanceRepository) ListByDate(ctx context.Context, date string) ([]domain.Attendance, error) {
	items, err := r.col().Load()
	if err != nil {
		return nil, err
	}
	out := make([]domain.Attendance, 0)
	for _, a := range items {
		if a.Date == date {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r AttendanceRepository) ListByMember(ctx context.Context, memberID string) ([]domain.Attendance, error) {
	items, err := r.col().Load()
	if err != nil {
		return nil, err
	}
	out := make([]domain.Attendance, 0)
	for _, a := range items {
		if a.MemberID == memberID {
			out = append(out, a)
		}
	}
	return out, nil
}

// GetByMemberAndDate finds the single record for a (member, day) pair.
func (r AttendanceRepository) GetByMemberAndDate(ctx context.Context, memberID, date string) (*domain.Attendance, error) {
	items, err := r.col().Load()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].MemberID == memberID && items[i].Date == date {
			return &items[i], nil
		}
	}
	return nil, ErrNotFound
}

// CreateCheckIn inserts the day's first record for a member.
func (r AttendanceRepository) CreateCheckIn(ctx context.Context, a domain.Attendance) (*domain.Attendance, error) {
	err := r.col().Mutate(func(alloc *store.Alloc, items []domain.Attendance) ([]domain.Attendance, error) {
		id, err := alloc.NextID()
		if err != nil {
			return nil, err
		}
		a.ID = id
		return append(items, a), nil
	})
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// SetCheckOut closes an open session in place.
func (r AttendanceRepository) SetCheckOut(ctx context.Context, id int64, t time.Time, scannedBy string) (*domain.Attendance, error) {
	var updated *domain.Attendance
	err := r.col().Mutate(func(_ *store.Alloc, items []domain.Attendance) ([]domain.Attendance, error) {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			items[i].CheckOut = &t
			items[i].ScannedBy = scannedBy
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

// ListOpen returns records for a date with a check-in but no check-out.
func (r AttendanceRepository) ListOpen(ctx context.Context, date string) ([]domain.Attendance, error) {
	items, err := r.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Attendance, 0)
	for _, a := range items {
		if a.CheckIn != nil && a.CheckOut == nil {
			out = append(out, a)
		}
	}
	return out, nil
}

// CreateAbsent records a no-show for a member on the given day.
func (r AttendanceRepository) CreateAbsent(ctx context.Context, memberID, memberName string, memberType domain.MemberType, date string) (*domain.Attendance, error) {
	a := domain.Attendance{
		MemberID:   memberID,
		MemberName: memberName,
		MemberType: memberType,
		Date:       date,
		Status:     domain.AttendanceAbsent,
	}
	err := r.col().Mutate(func(alloc *store.Alloc, items []domain.Attendance) ([]domain.Attendance, error) {
		id, err := alloc.NextID()
		if err != nil {
			return nil, err
		}
		a.ID = id
		return append(items, a), nil
	})
	if err != nil {
		return nil, err
	}
	return &a, nil
}
