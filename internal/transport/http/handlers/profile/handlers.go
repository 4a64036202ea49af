package profilehandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"hrpulse/internal/domain/forms"
	"hrpulse/internal/domain/profile"
	"hrpulse/internal/transport/http/api"
	"hrpulse/internal/transport/http/middleware"
	"hrpulse/internal/transport/http/shared"
	"hrpulse/internal/transport/http/web"
)

const formName = "profile"

type Handler struct {
	Service *profile.Service
	Pages   *web.Renderer
	Metrics shared.SubmissionCounter
}

func NewHandler(service *profile.Service, pages *web.Renderer, metrics shared.SubmissionCounter) *Handler {
	return &Handler{Service: service, Pages: pages, Metrics: metrics}
}

// RegisterRoutes mounts the JSON API.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/profile", func(r chi.Router) {
		r.Get("/", h.handleGet)
		r.Put("/", h.handleUpdate)
		r.Get("/options", h.handleOptions)
	})
}

// RegisterPages mounts the profile page and its edit form.
func (h *Handler) RegisterPages(r chi.Router) {
	r.Get("/profile", h.profilePage)
	r.Get("/profile/edit", h.editPage)
	r.Post("/profile/edit", h.submitPage)
}

type profilePayload struct {
	Name       string   `json:"name"`
	Position   string   `json:"position"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Department string   `json:"department"`
	Location   string   `json:"location"`
	Bio        string   `json:"bio"`
	Skills     []string `json:"skills"`
	Manager    string   `json:"manager"`
	StartDate  string   `json:"startDate"`
}

type formView struct {
	Form    *profile.Form
	Options profile.Options
	Issues  forms.Issues
	Skills  string
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	p, err := h.Service.Current(r.Context())
	if errors.Is(err, profile.ErrNoProfile) {
		api.NotFound(w, "profile not found", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "profile_get_failed", "failed to load profile", requestID)
		return
	}
	api.Success(w, p, requestID)
}

func (h *Handler) handleOptions(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	opts, err := h.Service.Options(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "profile_options_failed", "failed to load form options", requestID)
		return
	}
	api.Success(w, opts, requestID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	var payload profilePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	v := shared.NewValidator()
	start := v.Date("startDate", payload.StartDate)
	if v.Reject(w, requestID) {
		shared.CountSubmission(h.Metrics, formName, v.Err())
		return
	}

	form := &profile.Form{Values: profile.Values{
		Name:       strings.TrimSpace(payload.Name),
		Position:   payload.Position,
		Email:      strings.TrimSpace(payload.Email),
		Phone:      payload.Phone,
		Department: payload.Department,
		Location:   payload.Location,
		Bio:        payload.Bio,
		Skills:     profile.ParseSkills(strings.Join(payload.Skills, ",")),
		Manager:    payload.Manager,
		StartDate:  start,
	}}
	result, err := h.Service.Submit(r.Context(), form, profile.SubmitMeta{RequestID: requestID, IP: shared.ClientIP(r)})
	shared.CountSubmission(h.Metrics, formName, err)
	if err != nil {
		if shared.FailError(w, requestID, err) {
			return
		}
		api.Fail(w, http.StatusInternalServerError, "profile_update_failed", "failed to update profile", requestID)
		return
	}
	api.Success(w, result, requestID)
}

func (h *Handler) profilePage(w http.ResponseWriter, r *http.Request) {
	p, err := h.Service.Current(r.Context())
	if errors.Is(err, profile.ErrNoProfile) {
		h.Pages.NotFound(w, r, "No profile is available.")
		return
	}
	if err != nil {
		h.Pages.Error(w, r, err)
		return
	}
	var flash *web.Flash
	if r.URL.Query().Get("updated") == "1" {
		flash = &web.Flash{Title: profile.UpdatedToast.Title, Description: profile.UpdatedToast.Description}
	}
	h.Pages.Render(w, r, http.StatusOK, "profile", p, flash)
}

func (h *Handler) editPage(w http.ResponseWriter, r *http.Request) {
	form, err := h.Service.EditForm(r.Context())
	if errors.Is(err, profile.ErrNoProfile) {
		h.Pages.NotFound(w, r, "No profile is available.")
		return
	}
	if err != nil {
		h.Pages.Error(w, r, err)
		return
	}
	h.renderForm(w, r, http.StatusOK, form, nil)
}

// submitPage captures the posted profile and redirects back to the profile
// page, which shows the confirmation toast.
func (h *Handler) submitPage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.Pages.Render(w, r, http.StatusBadRequest, "error", nil, nil)
		return
	}
	values := r.PostForm
	form := &profile.Form{Values: profile.Values{
		Name:       strings.TrimSpace(values.Get("name")),
		Position:   values.Get("position"),
		Email:      strings.TrimSpace(values.Get("email")),
		Phone:      values.Get("phone"),
		Department: values.Get("department"),
		Location:   values.Get("location"),
		Bio:        values.Get("bio"),
		Skills:     profile.ParseSkills(values.Get("skills")),
		Manager:    values.Get("manager"),
	}}
	v := shared.NewValidator()
	form.Values.StartDate = v.Date("startDate", values.Get("startDate"))
	if v.HasIssues() {
		err := forms.Merge(form.Validate(), v.Err())
		shared.CountSubmission(h.Metrics, formName, err)
		issues, _ := forms.AsIssues(err)
		h.renderForm(w, r, http.StatusUnprocessableEntity, form, issues)
		return
	}

	requestID := middleware.GetRequestID(r.Context())
	result, err := h.Service.Submit(r.Context(), form, profile.SubmitMeta{RequestID: requestID, IP: shared.ClientIP(r)})
	shared.CountSubmission(h.Metrics, formName, err)
	if issues, ok := forms.AsIssues(err); ok {
		h.renderForm(w, r, http.StatusUnprocessableEntity, form, issues)
		return
	}
	if err != nil {
		h.Pages.Error(w, r, err)
		return
	}
	http.Redirect(w, r, result.Redirect+"?updated=1", http.StatusSeeOther)
}

func (h *Handler) renderForm(w http.ResponseWriter, r *http.Request, status int, form *profile.Form, issues forms.Issues) {
	opts, err := h.Service.Options(r.Context())
	if err != nil {
		h.Pages.Error(w, r, err)
		return
	}
	h.Pages.Render(w, r, status, "profile_form", formView{
		Form:    form,
		Options: opts,
		Issues:  issues,
		Skills:  profile.FormatSkills(form.Values.Skills),
	}, nil)
}
