package feedbackhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hrpulse/internal/domain/feedback"
	"hrpulse/internal/domain/route"
	"hrpulse/internal/transport/http/api"
	"hrpulse/internal/transport/http/middleware"
	"hrpulse/internal/transport/http/shared"
	"hrpulse/internal/transport/http/web"
)

const formName = "feedback"

type Handler struct {
	Service *feedback.Service
	Pages   *web.Renderer
	Metrics shared.SubmissionCounter
}

func NewHandler(service *feedback.Service, pages *web.Renderer, metrics shared.SubmissionCounter) *Handler {
	return &Handler{Service: service, Pages: pages, Metrics: metrics}
}

// RegisterRoutes mounts the JSON API.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/feedback", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleSchedule)
		r.Get("/options", h.handleOptions)
		r.Get("/calendar", h.handleCalendar)
		r.Get("/{id}", h.handleGet)
		r.Put("/{id}", h.handleUpdate)
	})
}

type schedulePayload struct {
	Employee string   `json:"employee"`
	Date     string   `json:"date"`
	TimeSlot string   `json:"timeSlot"`
	Location string   `json:"location"`
	Notes    string   `json:"notes"`
	Topics   []string `json:"topics"`
}

// apply copies the payload onto form. Topics go through the same add rules
// as the form control, so blanks and duplicates are dropped.
func (p schedulePayload) apply(form *feedback.ScheduleForm, date *time.Time) {
	form.Values.Employee = p.Employee
	form.Values.Date = nil
	if date != nil {
		d := feedback.DateOnly(*date)
		form.Values.Date = &d
	}
	form.Values.TimeSlot = p.TimeSlot
	form.Values.Location = p.Location
	form.Values.Notes = p.Notes
	form.Values.Topics = []string{}
	for _, topic := range p.Topics {
		form.AddTopic(topic)
	}
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	filter, err := feedback.ParseFilter(r.URL.Query().Get("q"), r.URL.Query().Get("status"))
	if err != nil {
		shared.FailValidation(w, requestID, []shared.ValidationIssue{{Field: "status", Reason: "must be one of all, scheduled, completed, cancelled"}})
		return
	}
	list, err := h.Service.List(r.Context(), filter)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "feedback_list_failed", "failed to list feedback sessions", requestID)
		return
	}
	api.Success(w, list, requestID)
}

func (h *Handler) handleOptions(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	opts, err := h.Service.Options(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "feedback_options_failed", "failed to load form options", requestID)
		return
	}
	api.Success(w, opts, requestID)
}

func (h *Handler) handleCalendar(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	month := h.Service.Today()
	if raw := r.URL.Query().Get("month"); raw != "" {
		parsed, err := time.Parse(monthLayout, raw)
		if err != nil {
			shared.FailValidation(w, requestID, []shared.ValidationIssue{{Field: "month", Reason: "must be a month in YYYY-MM format"}})
			return
		}
		month = parsed
	}
	api.Success(w, map[string]any{
		"month": month.Format(monthLayout),
		"days":  h.Service.Calendar(month.Year(), month.Month()),
	}, requestID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	view, err := route.Parse(chi.URLParam(r, "id"), "")
	if err != nil || view.Kind != route.KindDetail {
		api.NotFound(w, "feedback session not found", requestID)
		return
	}
	session, err := h.Service.Get(r.Context(), view.ID)
	if errors.Is(err, feedback.ErrSessionNotFound) {
		api.NotFound(w, "feedback session not found", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "feedback_get_failed", "failed to load feedback session", requestID)
		return
	}
	api.Success(w, feedback.NewCard(session), requestID)
}

func (h *Handler) handleSchedule(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	var payload schedulePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	v := shared.NewValidator()
	date := v.Date("date", payload.Date)
	if v.Reject(w, requestID) {
		shared.CountSubmission(h.Metrics, formName, v.Err())
		return
	}

	form := h.Service.NewForm()
	payload.apply(form, date)
	h.submit(w, r, form, http.StatusCreated)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	view, err := route.Parse(chi.URLParam(r, "id"), "")
	if err != nil || view.Kind != route.KindDetail {
		api.NotFound(w, "feedback session not found", requestID)
		return
	}
	form, err := h.Service.EditForm(r.Context(), view.ID)
	if errors.Is(err, feedback.ErrSessionNotFound) {
		api.NotFound(w, "feedback session not found", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "feedback_get_failed", "failed to load feedback session", requestID)
		return
	}

	var payload schedulePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	v := shared.NewValidator()
	date := v.Date("date", payload.Date)
	if v.Reject(w, requestID) {
		shared.CountSubmission(h.Metrics, formName, v.Err())
		return
	}
	payload.apply(form, date)
	h.submit(w, r, form, http.StatusOK)
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request, form *feedback.ScheduleForm, status int) {
	requestID := middleware.GetRequestID(r.Context())
	values, err := h.Service.Submit(r.Context(), form, feedback.SubmitMeta{RequestID: requestID, IP: shared.ClientIP(r)})
	shared.CountSubmission(h.Metrics, formName, err)
	if err != nil {
		if shared.FailError(w, requestID, err) {
			return
		}
		api.Fail(w, http.StatusInternalServerError, "feedback_submit_failed", "failed to submit feedback session", requestID)
		return
	}
	api.WriteJSON(w, status, api.Envelope{
		Success:   true,
		Data:      map[string]any{"values": values},
		RequestID: requestID,
	})
}
