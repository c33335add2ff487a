package repository

import (
	"context"
	"time"

	"github.com/syedsmuzakkir/Gym-Portal/internal/db"
	"github.com/syedsmuzakkir/Gym-Portal/internal/domain"
	"github.com/syedsmuzakkir/Gym-Portal/internal/store"
)

type MessageRepository struct {
	DB *db.Store
}

func (r MessageRepository) col() store.Collection[domain.Message] {
	return store.New(r.DB, colMessages, func(m domain.Message) int64 { return m.ID }, seedMessages)
}

// Channels returns the fixed channel catalog.
func (r MessageRepository) Channels(ctx context.Context) []domain.Channel {
	return []domain.Channel{
		{ID: "general", Name: "General", Description: "General gym discussions"},
		{ID: "trainers", Name: "Personal Trainers", Description: "Trainer coordination"},
		{ID: "maintenance", Name: "Maintenance", Description: "Equipment and facility issues"},
		{ID: "events", Name: "Events", Description: "Gym events and classes"},
		{ID: "announcements", Name: "Announcements", Description: "Important updates"},
	}
}

func (r MessageRepository) ListByChannel(ctx context.Context, channel string) ([]domain.Message, error) {
	items, err := r.col().Load()
	if err != nil {
		return nil, err
	}
	out := make([]domain.Message, 0)
	for _, m := range items {
		if m.Channel == channel {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r MessageRepository) Create(ctx context.Context, m domain.Message) (*domain.Message, error) {
	err := r.col().Mutate(func(alloc *store.Alloc, items []domain.Message) ([]domain.Message, error) {
		id, err := alloc.NextID()
		if err != nil {
			return nil, err
		}
		m.ID = id
		return append(items, m), nil
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Edit rewrites a message body and flags it as edited.
func (r MessageRepository) Edit(ctx context.Context, id int64, content string) (*domain.Message, error) {
	var updated *domain.Message
	err := r.col().Mutate(func(_ *store.Alloc, items []domain.Message) ([]domain.Message, error) {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			items[i].Content = content
			items[i].Edited = true
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

// React bumps the count for an emoji, adding the reaction if new.
func (r MessageRepository) React(ctx context.Context, id int64, emoji string) (*domain.Message, error) {
	var updated *domain.Message
	err := r.col().Mutate(func(_ *store.Alloc, items []domain.Message) ([]domain.Message, error) {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			found := false
			for j := range items[i].Reactions {
				if items[i].Reactions[j].Emoji == emoji {
					items[i].Reactions[j].Count++
					found = true
					break
				}
			}
			if !found {
				items[i].Reactions = append(items[i].Reactions, domain.Reaction{Emoji: emoji, Count: 1})
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

func seedMessages() []domain.Message {
	base := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	return []domain.Message{
		{
			ID: 1, Channel: "general", Author: "Sarah Johnson", Role: "Manager",
			Content:   "Good morning team! Remember we have the new member orientation at 10 AM today.",
			Timestamp: base.Add(-2 * time.Hour),
			Reactions: []domain.Reaction{{Emoji: "👍", Count: 3}, {Emoji: "✅", Count: 2}},
		},
		{
			ID: 2, Channel: "trainers", Author: "Mike Chen", Role: "Personal Trainer",
			Content:   "Client John Smith requested to reschedule his 3 PM session to 4 PM. Can someone cover the 3 PM slot?",
			Timestamp: base.Add(-4 * time.Hour),
			Reactions: []domain.Reaction{{Emoji: "🤝", Count: 1}},
		},
		{
			ID: 3, Channel: "maintenance", Author: "Alex Rodriguez", Role: "Maintenance",
			Content:   `Treadmill #3 is making unusual noises. I've put an "Out of Order" sign on it. Will check it after lunch.`,
			Timestamp: base.Add(-6 * time.Hour), Edited: true,
			Reactions: []domain.Reaction{{Emoji: "🔧", Count: 2}, {Emoji: "👍", Count: 1}},
		},
		{
			ID: 4, Channel: "events", Author: "Lisa Park", Role: "Fitness Instructor",
			Content:   "Yoga class tomorrow is fully booked! We might need to consider adding an extra session.",
			Timestamp: base.Add(-8 * time.Hour),
		},
	}
}
