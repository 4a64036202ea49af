package pdi

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrpulse/internal/domain/audit"
)

type recorded struct {
	action   string
	entityID string
	values   any
}

type fakeRecorder struct {
	events []recorded
}

func (f *fakeRecorder) Record(_ context.Context, action, _, entityID, _, _ string, values any) error {
	f.events = append(f.events, recorded{action: action, entityID: entityID, values: values})
	return nil
}

func newTestService(t *testing.T) (*Service, *fakeRecorder) {
	t.Helper()
	store, err := NewStore(samplePlans(), sampleOptions())
	require.NoError(t, err)
	rec := &fakeRecorder{}
	return NewService(store, rec), rec
}

func TestSubmitCapturesValues(t *testing.T) {
	svc, rec := newTestService(t)
	form := &PlanForm{Values: validValues()}

	got, err := svc.Submit(context.Background(), form, SubmitMeta{RequestID: "req-1"})
	require.NoError(t, err)
	if diff := cmp.Diff(validValues(), got); diff != "" {
		t.Fatalf("captured values mismatch (-want +got):\n%s", diff)
	}
	require.Len(t, rec.events, 1)
	assert.Equal(t, audit.ActionPlanCreate, rec.events[0].action)
	assert.Empty(t, rec.events[0].entityID)

	plans, err := svc.store.ListPlans(context.Background())
	require.NoError(t, err)
	assert.Len(t, plans, 3, "submission does not write to the store")
}

func TestSubmitEditRecordsPlanID(t *testing.T) {
	svc, rec := newTestService(t)
	form, err := svc.EditForm(context.Background(), 2)
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), form, SubmitMeta{})
	require.NoError(t, err)
	require.Len(t, rec.events, 1)
	assert.Equal(t, audit.ActionPlanEdit, rec.events[0].action)
	assert.Equal(t, "2", rec.events[0].entityID)
}

func TestSubmitInvalidFormIsNotCaptured(t *testing.T) {
	svc, rec := newTestService(t)
	_, err := svc.Submit(context.Background(), svc.NewForm(), SubmitMeta{})
	require.Error(t, err)
	assert.Empty(t, rec.events)
}

func TestGetFailsClosed(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Get(context.Background(), 42)
	assert.ErrorIs(t, err, ErrPlanNotFound)

	_, err = svc.EditForm(context.Background(), 42)
	assert.ErrorIs(t, err, ErrPlanNotFound)
}

func TestDetailVariesByID(t *testing.T) {
	svc, _ := newTestService(t)
	first, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	second, err := svc.Get(context.Background(), 2)
	require.NoError(t, err)
	assert.NotEqual(t, first.Title, second.Title)
	assert.Equal(t, "Sarah Williams", second.Employee.Name)
}

func TestStoreReturnsCopies(t *testing.T) {
	svc, _ := newTestService(t)
	plan, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	plan.Goals[0].Tasks[0].Completed = false

	again, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, again.Goals[0].Tasks[0].Completed)
}

func TestNewStoreRejectsInvalidPlans(t *testing.T) {
	plans := samplePlans()
	plans[0].Status = "archived"
	_, err := NewStore(plans, sampleOptions())
	assert.ErrorIs(t, err, ErrUnknownStatus)

	plans = samplePlans()
	plans[1].ID = 1
	_, err = NewStore(plans, sampleOptions())
	assert.Error(t, err)

	plans = samplePlans()
	plans[0].EndDate = plans[0].StartDate.AddDate(0, 0, -1)
	_, err = NewStore(plans, sampleOptions())
	assert.Error(t, err)
}

func TestForEmployee(t *testing.T) {
	svc, _ := newTestService(t)
	plan, err := svc.ForEmployee(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, 2, plan.ID)

	_, err = svc.ForEmployee(context.Background(), "5")
	assert.ErrorIs(t, err, ErrPlanNotFound, "draft plans are skipped")
}

func TestExportWritesPDF(t *testing.T) {
	svc, _ := newTestService(t)
	var buf bytes.Buffer
	require.NoError(t, svc.Export(context.Background(), 1, &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))

	err := svc.Export(context.Background(), 42, &buf)
	assert.ErrorIs(t, err, ErrPlanNotFound)
}
