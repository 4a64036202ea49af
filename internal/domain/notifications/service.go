package notifications

import (
	"context"
	"log/slog"
)

type Service struct {
	store StoreAPI
}

func New(store StoreAPI) *Service {
	return &Service{store: store}
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]Notification, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return s.store.ListNotifications(ctx, limit, offset)
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.store.CountNotifications(ctx)
}

// Unread is the badge count shown on the header bell. Failures are logged
// and reported as zero so the page still renders.
func (s *Service) Unread(ctx context.Context) int {
	count, err := s.store.CountUnread(ctx)
	if err != nil {
		slog.Warn("notification count failed", "err", err)
		return 0
	}
	return count
}

func (s *Service) MarkRead(ctx context.Context, id int) error {
	return s.store.MarkRead(ctx, id)
}

// MarkAllRead clears every unread flag.
func (s *Service) MarkAllRead(ctx context.Context) error {
	items, err := s.store.ListNotifications(ctx, 0, 0)
	if err != nil {
		return err
	}
	for _, n := range items {
		if !n.IsNew {
			continue
		}
		if err := s.store.MarkRead(ctx, n.ID); err != nil {
			return err
		}
	}
	return nil
}
