package notifications

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

var ErrNotFound = errors.New("notification not found")

type Notification struct {
	ID        int       `json:"id"`
	Type      string    `json:"type"`
	Text      string    `json:"text"`
	IsNew     bool      `json:"isNew"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store keeps the header notifications in memory. Only the read flag
// changes after construction.
type Store struct {
	mu    sync.RWMutex
	items []Notification
}

func NewStore(items []Notification) (*Store, error) {
	seen := make(map[int]bool, len(items))
	for _, n := range items {
		if seen[n.ID] {
			return nil, fmt.Errorf("duplicate notification id %d", n.ID)
		}
		seen[n.ID] = true
	}
	return &Store{items: append([]Notification(nil), items...)}, nil
}

func (s *Store) ListNotifications(ctx context.Context, limit, offset int) ([]Notification, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if offset < 0 {
		offset = 0
	}
	if offset >= len(s.items) {
		return []Notification{}, nil
	}
	end := len(s.items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return append([]Notification{}, s.items[offset:end]...), nil
}

func (s *Store) CountNotifications(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items), nil
}

func (s *Store) CountUnread(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, n := range s.items {
		if n.IsNew {
			count++
		}
	}
	return count, nil
}

func (s *Store) MarkRead(ctx context.Context, id int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].IsNew = false
			return nil
		}
	}
	return fmt.Errorf("%w: %d", ErrNotFound, id)
}
