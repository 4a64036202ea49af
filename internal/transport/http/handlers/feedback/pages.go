package feedbackhandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"hrpulse/internal/domain/feedback"
	"hrpulse/internal/domain/forms"
	"hrpulse/internal/domain/listing"
	"hrpulse/internal/domain/route"
	"hrpulse/internal/transport/http/middleware"
	"hrpulse/internal/transport/http/shared"
	"hrpulse/internal/transport/http/web"
)

const monthLayout = "2006-01"

// RegisterPages mounts the server-rendered pages.
func (h *Handler) RegisterPages(r chi.Router) {
	r.Route("/feedback", func(r chi.Router) {
		r.Get("/", h.page)
		r.Get("/{id}", h.page)
		r.Get("/{id}/{action}", h.page)
		r.Post("/{id}", h.submitPage)
		r.Post("/{id}/{action}", h.submitPage)
	})
}

type listView struct {
	List     feedback.List
	Statuses []web.Option
}

type calendarCell struct {
	Day        int
	Date       string
	Selectable bool
	Selected   bool
	Blank      bool
}

type formView struct {
	Form       *feedback.ScheduleForm
	Options    feedback.Options
	Issues     forms.Issues
	Action     string
	Month      string
	MonthLabel string
	PrevMonth  string
	NextMonth  string
	Weeks      [][]calendarCell
	Submitted  string
}

func (h *Handler) page(w http.ResponseWriter, r *http.Request) {
	view, err := route.Parse(chi.URLParam(r, "id"), chi.URLParam(r, "action"))
	if err != nil {
		h.Pages.NotFound(w, r, "This page does not exist.")
		return
	}
	switch view.Kind {
	case route.KindList:
		h.listPage(w, r)
	case route.KindDetail:
		h.detailPage(w, r, view.ID)
	case route.KindCreate:
		form := h.Service.NewForm()
		h.renderForm(w, r, http.StatusOK, form, h.Service.Today(), nil, "")
	case route.KindEdit:
		form, ok := h.editForm(w, r, view.ID)
		if !ok {
			return
		}
		h.renderForm(w, r, http.StatusOK, form, *form.Values.Date, nil, "")
	}
}

func (h *Handler) listPage(w http.ResponseWriter, r *http.Request) {
	query, status := r.URL.Query().Get("q"), r.URL.Query().Get("status")
	filter, err := feedback.ParseFilter(query, status)
	if err != nil {
		// An unknown status shows the unfiltered list.
		filter = feedback.Filter{Query: query}
	}
	list, err := h.Service.List(r.Context(), filter)
	if err != nil {
		h.Pages.Error(w, r, err)
		return
	}
	h.Pages.Render(w, r, http.StatusOK, "feedback_list", listView{List: list, Statuses: statusOptions(list.Status)}, nil)
}

func statusOptions(selected string) []web.Option {
	out := []web.Option{{Value: listing.StatusAll, Label: "All statuses", Selected: selected == listing.StatusAll || selected == ""}}
	for _, status := range feedback.Statuses {
		out = append(out, web.Option{Value: string(status), Label: status.Style().Label, Selected: selected == string(status)})
	}
	return out
}

func (h *Handler) detailPage(w http.ResponseWriter, r *http.Request, id int) {
	session, err := h.Service.Get(r.Context(), id)
	if errors.Is(err, feedback.ErrSessionNotFound) {
		h.Pages.NotFound(w, r, "Feedback session not found.")
		return
	}
	if err != nil {
		h.Pages.Error(w, r, err)
		return
	}
	h.Pages.Render(w, r, http.StatusOK, "feedback_detail", feedback.NewCard(session), nil)
}

func (h *Handler) editForm(w http.ResponseWriter, r *http.Request, id int) (*feedback.ScheduleForm, bool) {
	form, err := h.Service.EditForm(r.Context(), id)
	if errors.Is(err, feedback.ErrSessionNotFound) {
		h.Pages.NotFound(w, r, "Feedback session not found.")
		return nil, false
	}
	if err != nil {
		h.Pages.Error(w, r, err)
		return nil, false
	}
	return form, true
}

// submitPage handles every button of the scheduling form. Only the submit
// operation validates; the others update the form state and render it again.
func (h *Handler) submitPage(w http.ResponseWriter, r *http.Request) {
	view, err := route.Parse(chi.URLParam(r, "id"), chi.URLParam(r, "action"))
	if err != nil || !view.IsForm() {
		h.Pages.NotFound(w, r, "This page does not exist.")
		return
	}
	form := h.Service.NewForm()
	if view.Kind == route.KindEdit {
		var ok bool
		if form, ok = h.editForm(w, r, view.ID); !ok {
			return
		}
	}
	if err := r.ParseForm(); err != nil {
		h.Pages.Render(w, r, http.StatusBadRequest, "error", nil, nil)
		return
	}
	month := decodeForm(r, form)

	op := shared.ParseOp(r.PostForm.Get("op"))
	if op.IsDefault() {
		// Enter in the topic box adds the topic.
		op = shared.Op{Name: "submit"}
		if strings.TrimSpace(r.PostForm.Get("newTopic")) != "" {
			op = shared.Op{Name: "add-topic"}
		}
	}
	switch op.Name {
	case "add-topic":
		form.AddTopic(r.PostForm.Get("newTopic"))
	case "remove-topic":
		if i := op.Int(0); i >= 0 && i < len(form.Values.Topics) {
			form.RemoveTopic(form.Values.Topics[i])
		}
	case "date":
		if day, err := time.Parse(shared.DateLayout, op.Arg(0)); err == nil {
			form.SelectDate(day)
			month = day
		}
	case "month":
		if m, err := time.Parse(monthLayout, op.Arg(0)); err == nil {
			month = m
		}
	case "submit":
		h.submitForm(w, r, form, month)
		return
	}
	h.renderForm(w, r, http.StatusOK, form, month, nil, "")
}

func (h *Handler) submitForm(w http.ResponseWriter, r *http.Request, form *feedback.ScheduleForm, month time.Time) {
	requestID := middleware.GetRequestID(r.Context())
	values, err := h.Service.Submit(r.Context(), form, feedback.SubmitMeta{RequestID: requestID, IP: shared.ClientIP(r)})
	shared.CountSubmission(h.Metrics, formName, err)
	if issues, ok := forms.AsIssues(err); ok {
		h.renderForm(w, r, http.StatusUnprocessableEntity, form, month, issues, "")
		return
	}
	if err != nil {
		h.Pages.Error(w, r, err)
		return
	}
	echo, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		h.Pages.Error(w, r, err)
		return
	}
	flash := &web.Flash{Title: "Session Scheduled", Description: "The feedback session has been scheduled."}
	if form.IsEdit() {
		flash = &web.Flash{Title: "Session Updated", Description: "The feedback session has been updated."}
	}
	h.renderFormWithFlash(w, r, http.StatusOK, form, month, nil, string(echo), flash)
}

// decodeForm copies the posted fields onto form and returns the month the
// calendar should show. A posted date only replaces the current one when the
// picker offers it; an edited session keeps its stored date unchanged.
func decodeForm(r *http.Request, form *feedback.ScheduleForm) time.Time {
	values := r.PostForm
	form.Values.Employee = values.Get("employee")
	form.Values.TimeSlot = values.Get("timeSlot")
	form.Values.Location = values.Get("location")
	form.Values.Notes = values.Get("notes")
	form.Values.Topics = []string{}
	for _, topic := range values["topics"] {
		form.AddTopic(topic)
	}

	stored := form.Values.Date
	form.Values.Date = nil
	if day, err := time.Parse(shared.DateLayout, values.Get("date")); err == nil {
		if stored != nil && form.IsEdit() && feedback.DateOnly(day).Equal(*stored) {
			form.Values.Date = stored
		} else {
			form.SelectDate(day)
		}
	}

	if m, err := time.Parse(monthLayout, values.Get("month")); err == nil {
		return m
	}
	if form.Values.Date != nil {
		return *form.Values.Date
	}
	return form.Today
}

func (h *Handler) renderForm(w http.ResponseWriter, r *http.Request, status int, form *feedback.ScheduleForm, month time.Time, issues forms.Issues, submitted string) {
	h.renderFormWithFlash(w, r, status, form, month, issues, submitted, nil)
}

func (h *Handler) renderFormWithFlash(w http.ResponseWriter, r *http.Request, status int, form *feedback.ScheduleForm, month time.Time, issues forms.Issues, submitted string, flash *web.Flash) {
	opts, err := h.Service.Options(r.Context())
	if err != nil {
		h.Pages.Error(w, r, err)
		return
	}
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	action := feedback.CreateHref
	if form.IsEdit() {
		action = fmt.Sprintf("/feedback/%d/edit", form.SessionID)
	}
	h.Pages.Render(w, r, status, "feedback_form", formView{
		Form:       form,
		Options:    opts,
		Issues:     issues,
		Action:     action,
		Month:      first.Format(monthLayout),
		MonthLabel: first.Format("January 2006"),
		PrevMonth:  first.AddDate(0, -1, 0).Format(monthLayout),
		NextMonth:  first.AddDate(0, 1, 0).Format(monthLayout),
		Weeks:      calendarWeeks(first, h.Service.Calendar(first.Year(), first.Month()), form.Values.Date),
		Submitted:  submitted,
	}, flash)
}

// calendarWeeks lays the month out in Monday-first rows padded with blanks.
func calendarWeeks(first time.Time, days []feedback.CalendarDay, selected *time.Time) [][]calendarCell {
	selectedValue := shared.FormatDate(selected)
	lead := (int(first.Weekday()) + 6) % 7
	cells := make([]calendarCell, 0, lead+len(days)+6)
	for i := 0; i < lead; i++ {
		cells = append(cells, calendarCell{Blank: true})
	}
	for i, day := range days {
		cells = append(cells, calendarCell{
			Day:        i + 1,
			Date:       day.Date,
			Selectable: day.Selectable,
			Selected:   day.Date == selectedValue,
		})
	}
	for len(cells)%7 != 0 {
		cells = append(cells, calendarCell{Blank: true})
	}
	weeks := make([][]calendarCell, 0, len(cells)/7)
	for i := 0; i < len(cells); i += 7 {
		weeks = append(weeks, cells[i:i+7])
	}
	return weeks
}
