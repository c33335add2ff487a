package repository

import (
	"context"
	"time"

	"github.com/syedsmuzakkir/Gym-Portal/internal/db"
	"github.com/syedsmuzakkir/Gym-Portal/internal/domain"
	"github.com/syedsmuzakkir/Gym-Portal/internal/store"
)

type MeetingRepository struct {
	DB *db.Store
}

func (r MeetingRepository) col() store.Collection[domain.Meeting] {
	return store.New(r.DB, colMeetings, func(m domain.Meeting) int64 { return m.ID }, seedMeetings)
}

func (r MeetingRepository) List(ctx context.Context) ([]domain.Meeting, error) {
	return r.col().Load()
}

func (r MeetingRepository) Get(ctx context.Context, id int64) (*domain.Meeting, error) {
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

func (r MeetingRepository) Create(ctx context.Context, m domain.Meeting) (*domain.Meeting, error) {
	err := r.col().Mutate(func(alloc *store.Alloc, items []domain.Meeting) ([]domain.Meeting, error) {
		id, err := alloc.NextID()
		if err != nil {
			return nil, err
		}
		m.ID = id
		if m.Status == "" {
			m.Status = domain.MeetingScheduled
		}
		return append(items, m), nil
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

type UpdateMeetingParams struct {
	Title     *string
	Type      *string
	Date      *time.Time
	Duration  *int
	Location  *string
	Organizer *string
	Attendees *[]string
	Agenda    *string
	Status    *domain.MeetingStatus
	Reminders *[]int
}

func (r MeetingRepository) Update(ctx context.Context, id int64, p UpdateMeetingParams) (*domain.Meeting, error) {
	var updated *domain.Meeting
	err := r.col().Mutate(func(_ *store.Alloc, items []domain.Meeting) ([]domain.Meeting, error) {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			m := &items[i]
			if p.Title != nil {
				m.Title = *p.Title
			}
			if p.Type != nil {
				m.Type = *p.Type
			}
			if p.Date != nil {
				m.Date = *p.Date
			}
			if p.Duration != nil {
				m.Duration = *p.Duration
			}
			if p.Location != nil {
				m.Location = *p.Location
			}
			if p.Organizer != nil {
				m.Organizer = *p.Organizer
			}
			if p.Attendees != nil {
				m.Attendees = *p.Attendees
			}
			if p.Agenda != nil {
				m.Agenda = *p.Agenda
			}
			if p.Status != nil {
				m.Status = *p.Status
			}
			if p.Reminders != nil {
				m.Reminders = *p.Reminders
			}
			out := *m
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

func (r MeetingRepository) Delete(ctx context.Context, id int64) error {
	return r.col().Mutate(func(_ *store.Alloc, items []domain.Meeting) ([]domain.Meeting, error) {
		for i := range items {
			if items[i].ID == id {
				return append(items[:i], items[i+1:]...), nil
			}
		}
		return nil, ErrNotFound
	})
}

func seedMeetings() []domain.Meeting {
	return []domain.Meeting{
		{
			ID: 1, Title: "Weekly Staff Meeting", Type: "staff",
			Date:     time.Date(2024, 12, 25, 9, 0, 0, 0, time.UTC),
			Duration: 60, Location: "Conference Room", Organizer: "Sarah Johnson",
			Attendees: []string{"Mike Chen", "Lisa Park", "Alex Rodriguez", "Emma Wilson"},
			Agenda:    "Review weekly performance, discuss new member onboarding, equipment updates",
			Status:    domain.MeetingScheduled, Reminders: []int{15, 60},
		},
		{
			ID: 2, Title: "Personal Training Certification", Type: "training",
			Date:     time.Date(2024, 12, 26, 14, 0, 0, 0, time.UTC),
			Duration: 120, Location: "Training Area", Organizer: "Mike Chen",
			Attendees: []string{"New Trainee"},
			Agenda:    "CPR certification renewal, new equipment training",
			Status:    domain.MeetingScheduled, Reminders: []int{30},
		},
		{
			ID: 3, Title: "Member Fitness Assessment", Type: "consultation",
			Date:     time.Date(2024, 12, 27, 10, 30, 0, 0, time.UTC),
			Duration: 45, Location: "Assessment Room", Organizer: "Lisa Park",
			Attendees: []string{"John Smith"},
			Agenda:    "Initial fitness assessment, goal setting, program design",
			Status:    domain.MeetingScheduled, Reminders: []int{15},
		},
	}
}
