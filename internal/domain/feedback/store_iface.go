package feedback

import "context"

type StoreAPI interface {
	ListSessions(ctx context.Context) ([]Session, error)
	GetSession(ctx context.Context, id int) (Session, error)
	Options(ctx context.Context) (Options, error)
}
