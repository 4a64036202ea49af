package pdihandler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"hrpulse/internal/domain/pdi"
	"hrpulse/internal/domain/route"
	"hrpulse/internal/transport/http/api"
	"hrpulse/internal/transport/http/middleware"
	"hrpulse/internal/transport/http/shared"
	"hrpulse/internal/transport/http/web"
)

const formName = "pdi"

type Handler struct {
	Service *pdi.Service
	Pages   *web.Renderer
	Metrics shared.SubmissionCounter
}

func NewHandler(service *pdi.Service, pages *web.Renderer, metrics shared.SubmissionCounter) *Handler {
	return &Handler{Service: service, Pages: pages, Metrics: metrics}
}

// RegisterRoutes mounts the JSON API.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/pdi", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/options", h.handleOptions)
		r.Get("/{id}", h.handleGet)
		r.Put("/{id}", h.handleUpdate)
		r.Get("/{id}/export.pdf", h.handleExport)
	})
}

type taskPayload struct {
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

type goalPayload struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Tasks       []taskPayload `json:"tasks"`
}

type planPayload struct {
	Employee    string        `json:"employee"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	StartDate   string        `json:"startDate"`
	EndDate     string        `json:"endDate"`
	Goals       []goalPayload `json:"goals"`
}

// values converts the payload into form values. Goals and tasks get fresh
// ids, so clients never need to send them.
func (p planPayload) values(start, end *time.Time) pdi.PlanValues {
	out := pdi.PlanValues{
		Employee:    p.Employee,
		Title:       p.Title,
		Description: p.Description,
		StartDate:   start,
		EndDate:     end,
		Goals:       make([]pdi.GoalValues, 0, len(p.Goals)),
	}
	for _, g := range p.Goals {
		goal := pdi.NewGoal()
		goal.Title = g.Title
		goal.Description = g.Description
		goal.Tasks = make([]pdi.TaskValues, 0, len(g.Tasks))
		for _, t := range g.Tasks {
			task := pdi.NewTask()
			task.Description = t.Description
			task.Completed = t.Completed
			goal.Tasks = append(goal.Tasks, task)
		}
		out.Goals = append(out.Goals, goal)
	}
	return out
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	filter, err := pdi.ParseFilter(r.URL.Query().Get("q"), r.URL.Query().Get("status"))
	if err != nil {
		shared.FailValidation(w, requestID, []shared.ValidationIssue{{Field: "status", Reason: "must be one of all, active, draft, completed"}})
		return
	}
	list, err := h.Service.List(r.Context(), filter)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "pdi_list_failed", "failed to list development plans", requestID)
		return
	}
	api.Success(w, list, requestID)
}

func (h *Handler) handleOptions(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	opts, err := h.Service.Options(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "pdi_options_failed", "failed to load form options", requestID)
		return
	}
	api.Success(w, opts, requestID)
}

// planID resolves the {id} parameter, writing a not found response when it
// does not name a plan.
func (h *Handler) planID(w http.ResponseWriter, r *http.Request) (int, bool) {
	view, err := route.Parse(chi.URLParam(r, "id"), "")
	if err != nil || view.Kind != route.KindDetail {
		api.NotFound(w, "development plan not found", middleware.GetRequestID(r.Context()))
		return 0, false
	}
	return view.ID, true
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id, ok := h.planID(w, r)
	if !ok {
		return
	}
	plan, err := h.Service.Get(r.Context(), id)
	if errors.Is(err, pdi.ErrPlanNotFound) {
		api.NotFound(w, "development plan not found", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "pdi_get_failed", "failed to load development plan", requestID)
		return
	}
	api.Success(w, map[string]any{
		"plan":     plan,
		"style":    plan.Status.Style(),
		"progress": plan.Progress(),
	}, requestID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	form := h.Service.NewForm()
	if !h.decodePayload(w, r, form) {
		return
	}
	h.submit(w, r, form, http.StatusCreated)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id, ok := h.planID(w, r)
	if !ok {
		return
	}
	form, err := h.Service.EditForm(r.Context(), id)
	if errors.Is(err, pdi.ErrPlanNotFound) {
		api.NotFound(w, "development plan not found", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "pdi_get_failed", "failed to load development plan", requestID)
		return
	}
	if !h.decodePayload(w, r, form) {
		return
	}
	h.submit(w, r, form, http.StatusOK)
}

func (h *Handler) decodePayload(w http.ResponseWriter, r *http.Request, form *pdi.PlanForm) bool {
	requestID := middleware.GetRequestID(r.Context())
	var payload planPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return false
	}
	v := shared.NewValidator()
	start := v.Date("startDate", payload.StartDate)
	end := v.Date("endDate", payload.EndDate)
	if v.Reject(w, requestID) {
		shared.CountSubmission(h.Metrics, formName, v.Err())
		return false
	}
	form.Values = payload.values(start, end)
	return true
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request, form *pdi.PlanForm, status int) {
	requestID := middleware.GetRequestID(r.Context())
	values, err := h.Service.Submit(r.Context(), form, pdi.SubmitMeta{RequestID: requestID, IP: shared.ClientIP(r)})
	shared.CountSubmission(h.Metrics, formName, err)
	if err != nil {
		if shared.FailError(w, requestID, err) {
			return
		}
		api.Fail(w, http.StatusInternalServerError, "pdi_submit_failed", "failed to submit development plan", requestID)
		return
	}
	api.WriteJSON(w, status, api.Envelope{
		Success:   true,
		Data:      map[string]any{"values": values},
		RequestID: requestID,
	})
}

// handleExport renders the plan as a PDF. The document is built in memory
// so an unknown plan still gets a clean not found response.
func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id, ok := h.planID(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	err := h.Service.Export(r.Context(), id, &buf)
	if errors.Is(err, pdi.ErrPlanNotFound) {
		api.NotFound(w, "development plan not found", requestID)
		return
	}
	if err != nil {
		slog.Error("pdi export failed", "err", err, "planId", id, "requestId", requestID)
		api.Fail(w, http.StatusInternalServerError, "pdi_export_failed", "failed to export development plan", requestID)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=pdi-%d.pdf", id))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	if _, err := buf.WriteTo(w); err != nil {
		slog.Warn("pdi export write failed", "err", err, "planId", id)
	}
}
