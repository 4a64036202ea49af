package notifications

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	store, err := NewStore([]Notification{
		{ID: 1, Type: TypeFeedbackScheduled, Text: "Feedback session scheduled for tomorrow", IsNew: true},
		{ID: 2, Type: TypeGoalApproved, Text: "New PDI goal was approved", IsNew: true},
		{ID: 3, Type: TypeReminder, Text: "Reminder: Complete your self-assessment"},
	})
	require.NoError(t, err)
	return New(store)
}

func TestUnreadCount(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	assert.Equal(t, 2, svc.Unread(ctx))

	require.NoError(t, svc.MarkRead(ctx, 1))
	assert.Equal(t, 1, svc.Unread(ctx))

	require.NoError(t, svc.MarkAllRead(ctx))
	assert.Zero(t, svc.Unread(ctx))
}

func TestMarkReadUnknownID(t *testing.T) {
	svc := newTestService(t)
	assert.ErrorIs(t, svc.MarkRead(context.Background(), 99), ErrNotFound)
}

func TestListPaging(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	all, err := svc.List(ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	total, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, total)

	page, err := svc.List(ctx, 2, 1)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, 2, page[0].ID)

	empty, err := svc.List(ctx, 2, 10)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestNewStoreRejectsDuplicateIDs(t *testing.T) {
	_, err := NewStore([]Notification{{ID: 1}, {ID: 1}})
	assert.Error(t, err)
}

func TestUnreadReportsZeroOnCanceledContext(t *testing.T) {
	svc := newTestService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Zero(t, svc.Unread(ctx))
}
