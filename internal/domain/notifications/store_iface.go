package notifications

import "context"

type StoreAPI interface {
	ListNotifications(ctx context.Context, limit, offset int) ([]Notification, error)
	CountNotifications(ctx context.Context) (int, error)
	CountUnread(ctx context.Context) (int, error)
	MarkRead(ctx context.Context, id int) error
}
