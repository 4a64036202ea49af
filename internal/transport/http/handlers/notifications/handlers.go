package notificationshandler

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"hrpulse/internal/domain/notifications"
	"hrpulse/internal/transport/http/api"
	"hrpulse/internal/transport/http/middleware"
	"hrpulse/internal/transport/http/shared"
)

type Handler struct {
	Service *notifications.Service
}

func NewHandler(service *notifications.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/notifications", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/read-all", h.handleMarkAllRead)
		r.Post("/{notificationID}/read", h.handleMarkRead)
	})
}

// RegisterPages mounts the form targets used by the header bell. Both
// redirect back to the page the form was posted from.
func (h *Handler) RegisterPages(r chi.Router) {
	r.Post("/notifications/read-all", h.markAllReadPage)
	r.Post("/notifications/{notificationID}/read", h.markReadPage)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	page := shared.ParsePagination(r, notifications.DefaultLimit, 100)
	total, err := h.Service.Count(r.Context())
	if err != nil {
		slog.Warn("notification count failed", "err", err)
	}

	items, err := h.Service.List(r.Context(), page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "notification_list_failed", "failed to list notifications", requestID)
		return
	}

	shared.WriteTotal(w, total)
	api.Success(w, map[string]any{
		"items":  items,
		"unread": h.Service.Unread(r.Context()),
	}, requestID)
}

func (h *Handler) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id, err := strconv.Atoi(chi.URLParam(r, "notificationID"))
	if err != nil {
		api.NotFound(w, "notification not found", requestID)
		return
	}
	if err := h.Service.MarkRead(r.Context(), id); err != nil {
		if errors.Is(err, notifications.ErrNotFound) {
			api.NotFound(w, "notification not found", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "notification_update_failed", "failed to update notification", requestID)
		return
	}
	api.Success(w, map[string]string{"status": "read"}, requestID)
}

func (h *Handler) handleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	if err := h.Service.MarkAllRead(r.Context()); err != nil {
		api.Fail(w, http.StatusInternalServerError, "notification_update_failed", "failed to update notifications", requestID)
		return
	}
	api.Success(w, map[string]string{"status": "read"}, requestID)
}

func (h *Handler) markReadPage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "notificationID"))
	if err == nil {
		err = h.Service.MarkRead(r.Context(), id)
	}
	if err != nil {
		slog.Warn("notification mark read failed", "err", err, "requestId", middleware.GetRequestID(r.Context()))
	}
	http.Redirect(w, r, returnPath(r), http.StatusSeeOther)
}

func (h *Handler) markAllReadPage(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.MarkAllRead(r.Context()); err != nil {
		slog.Warn("notification mark all read failed", "err", err, "requestId", middleware.GetRequestID(r.Context()))
	}
	http.Redirect(w, r, returnPath(r), http.StatusSeeOther)
}

// returnPath is the local path of the Referer, or the dashboard when the
// Referer is missing or points at another host.
func returnPath(r *http.Request) string {
	ref, err := url.Parse(r.Referer())
	if err != nil || ref.Path == "" || !strings.HasPrefix(ref.Path, "/") || strings.HasPrefix(ref.Path, "//") {
		return "/"
	}
	if ref.Host != "" && ref.Host != r.Host {
		return "/"
	}
	if ref.RawQuery != "" {
		return ref.Path + "?" + ref.RawQuery
	}
	return ref.Path
}
