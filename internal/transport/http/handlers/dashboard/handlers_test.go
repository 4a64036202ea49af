package dashboardhandler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrpulse/internal/domain/audit"
	"hrpulse/internal/domain/dashboard"
	"hrpulse/internal/domain/feedback"
	"hrpulse/internal/domain/notifications"
	"hrpulse/internal/domain/pdi"
	"hrpulse/internal/platform/seed"
	"hrpulse/internal/transport/http/middleware"
	"hrpulse/internal/transport/http/web"
)

type failingUpcoming struct{}

func (failingUpcoming) Upcoming(context.Context, int) ([]feedback.Session, error) {
	return nil, errors.New("store offline")
}

func newRouter(t *testing.T, upcoming dashboard.UpcomingSource) http.Handler {
	t.Helper()
	data, err := seed.Parse(seed.Embedded())
	require.NoError(t, err)
	log := audit.New(0)
	if upcoming == nil {
		upcoming = feedback.NewService(data.Feedback, log)
	}
	pages, err := web.New(notifications.New(data.Notifications))
	require.NoError(t, err)

	h := NewHandler(dashboard.NewService(data.Dashboard, upcoming, pdi.NewService(data.Plans, log)), pages)
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Route("/api/v1", h.RegisterRoutes)
	h.RegisterPages(r)
	return r
}

func get(router http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestOverviewAPI(t *testing.T) {
	rec := get(newRouter(t, nil), "/api/v1/dashboard")
	require.Equal(t, http.StatusOK, rec.Code)

	var env struct {
		Data dashboard.Overview `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Len(t, env.Data.Stats, 3)
	assert.Len(t, env.Data.Upcoming, dashboard.UpcomingLimit)
	assert.Len(t, env.Data.Activities, 3)
	require.NotNil(t, env.Data.Plan)
	assert.Equal(t, "/pdi/1", env.Data.Plan.Href)

	data, err := seed.Parse(seed.Embedded())
	require.NoError(t, err)
	plan, err := data.Plans.GetPlan(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, plan.Progress(), env.Data.PlanPct)
	assert.Equal(t, 40, env.Data.PlanPct)
}

func TestDashboardPage(t *testing.T) {
	rec := get(newRouter(t, nil), "/")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Completed Feedbacks")
	assert.Contains(t, body, "Upcoming Feedbacks")
	assert.Contains(t, body, "6/15 completed")
	assert.Contains(t, body, `href="/pdi/1"`)
	assert.Contains(t, body, "Notifications")
}

func TestOverviewFailure(t *testing.T) {
	router := newRouter(t, failingUpcoming{})
	assert.Equal(t, http.StatusInternalServerError, get(router, "/api/v1/dashboard").Code)
	assert.Equal(t, http.StatusInternalServerError, get(router, "/").Code)
}
