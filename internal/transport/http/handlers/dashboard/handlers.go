package dashboardhandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrpulse/internal/domain/dashboard"
	"hrpulse/internal/transport/http/api"
	"hrpulse/internal/transport/http/middleware"
	"hrpulse/internal/transport/http/web"
)

type Handler struct {
	Service *dashboard.Service
	Pages   *web.Renderer
}

func NewHandler(service *dashboard.Service, pages *web.Renderer) *Handler {
	return &Handler{Service: service, Pages: pages}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/dashboard", h.handleOverview)
}

func (h *Handler) RegisterPages(r chi.Router) {
	r.Get("/", h.page)
}

func (h *Handler) handleOverview(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	overview, err := h.Service.Overview(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "dashboard_failed", "failed to load dashboard", requestID)
		return
	}
	api.Success(w, overview, requestID)
}

func (h *Handler) page(w http.ResponseWriter, r *http.Request) {
	overview, err := h.Service.Overview(r.Context())
	if err != nil {
		h.Pages.Error(w, r, err)
		return
	}
	h.Pages.Render(w, r, http.StatusOK, "dashboard", overview, nil)
}
