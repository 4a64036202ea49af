package pdihandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"hrpulse/internal/domain/forms"
	"hrpulse/internal/domain/listing"
	"hrpulse/internal/domain/pdi"
	"hrpulse/internal/domain/route"
	"hrpulse/internal/transport/http/middleware"
	"hrpulse/internal/transport/http/shared"
	"hrpulse/internal/transport/http/web"
)

// RegisterPages mounts the server-rendered pages.
func (h *Handler) RegisterPages(r chi.Router) {
	r.Route("/pdi", func(r chi.Router) {
		r.Get("/", h.page)
		r.Get("/{id}", h.page)
		r.Get("/{id}/{action}", h.page)
		r.Get("/{id}/export.pdf", h.handleExport)
		r.Post("/{id}", h.submitPage)
		r.Post("/{id}/{action}", h.submitPage)
	})
}

type listView struct {
	List     pdi.List
	Statuses []web.Option
}

type detailView struct {
	Plan       pdi.Plan
	Style      listing.Style
	Progress   int
	Completed  int
	Total      int
	EditHref   string
	ExportHref string
}

type formView struct {
	Form      *pdi.PlanForm
	Options   pdi.Options
	Issues    forms.Issues
	Action    string
	Submitted string
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
		h.renderForm(w, r, http.StatusOK, h.Service.NewForm(), nil, "", nil)
	case route.KindEdit:
		form, ok := h.editForm(w, r, view.ID)
		if !ok {
			return
		}
		h.renderForm(w, r, http.StatusOK, form, nil, "", nil)
	}
}

func (h *Handler) listPage(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	filter, err := pdi.ParseFilter(query, r.URL.Query().Get("status"))
	if err != nil {
		// An unknown status shows the unfiltered list.
		filter = pdi.Filter{Query: query}
	}
	list, err := h.Service.List(r.Context(), filter)
	if err != nil {
		h.Pages.Error(w, r, err)
		return
	}
	h.Pages.Render(w, r, http.StatusOK, "pdi_list", listView{List: list, Statuses: statusOptions(list.Status)}, nil)
}

func statusOptions(selected string) []web.Option {
	out := []web.Option{{Value: listing.StatusAll, Label: "All statuses", Selected: selected == listing.StatusAll || selected == ""}}
	for _, status := range pdi.Statuses {
		out = append(out, web.Option{Value: string(status), Label: status.Style().Label, Selected: selected == string(status)})
	}
	return out
}

func (h *Handler) detailPage(w http.ResponseWriter, r *http.Request, id int) {
	plan, err := h.Service.Get(r.Context(), id)
	if errors.Is(err, pdi.ErrPlanNotFound) {
		h.Pages.NotFound(w, r, "Development plan not found.")
		return
	}
	if err != nil {
		h.Pages.Error(w, r, err)
		return
	}
	completed, total := plan.TaskCounts()
	h.Pages.Render(w, r, http.StatusOK, "pdi_detail", detailView{
		Plan:       plan,
		Style:      plan.Status.Style(),
		Progress:   plan.Progress(),
		Completed:  completed,
		Total:      total,
		EditHref:   fmt.Sprintf("/pdi/%d/edit", plan.ID),
		ExportHref: fmt.Sprintf("/pdi/%d/export.pdf", plan.ID),
	}, nil)
}

func (h *Handler) editForm(w http.ResponseWriter, r *http.Request, id int) (*pdi.PlanForm, bool) {
	form, err := h.Service.EditForm(r.Context(), id)
	if errors.Is(err, pdi.ErrPlanNotFound) {
		h.Pages.NotFound(w, r, "Development plan not found.")
		return nil, false
	}
	if err != nil {
		h.Pages.Error(w, r, err)
		return nil, false
	}
	return form, true
}

// submitPage applies one goal or task operation to the posted form, or
// validates and captures it when the submit button was pressed.
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
	form.Values = decodeForm(r.PostForm)

	op := shared.ParseOp(r.PostForm.Get("op"))
	if op.IsDefault() {
		op = shared.Op{Name: "submit"}
	}
	switch op.Name {
	case "add-goal":
		form.AddGoal()
	case "remove-goal":
		form.RemoveGoal(op.Int(0))
	case "add-task":
		form.AddTask(op.Int(0))
	case "remove-task":
		form.RemoveTask(op.Int(0), op.Int(1))
	case "move-goal":
		form.MoveGoal(op.Int(0), op.Int(1))
	case "submit":
		h.submitForm(w, r, form)
		return
	}
	h.renderForm(w, r, http.StatusOK, form, nil, "", nil)
}

func (h *Handler) submitForm(w http.ResponseWriter, r *http.Request, form *pdi.PlanForm) {
	requestID := middleware.GetRequestID(r.Context())
	values, err := h.Service.Submit(r.Context(), form, pdi.SubmitMeta{RequestID: requestID, IP: shared.ClientIP(r)})
	shared.CountSubmission(h.Metrics, formName, err)
	if issues, ok := forms.AsIssues(err); ok {
		h.renderForm(w, r, http.StatusUnprocessableEntity, form, issues, "", nil)
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
	flash := &web.Flash{Title: "Plan Created", Description: "The development plan has been created."}
	if form.IsEdit() {
		flash = &web.Flash{Title: "Plan Updated", Description: "The development plan has been updated."}
	}
	h.renderForm(w, r, http.StatusOK, form, nil, string(echo), flash)
}

// decodeForm rebuilds the plan values from the flattened field names
// "goals.<g>.title" and "goals.<g>.tasks.<t>.description". Goals and tasks
// are read in index order until the first missing id.
func decodeForm(values url.Values) pdi.PlanValues {
	out := pdi.PlanValues{
		Employee:    values.Get("employee"),
		Title:       strings.TrimSpace(values.Get("title")),
		Description: values.Get("description"),
		StartDate:   optionalDate(values.Get("startDate")),
		EndDate:     optionalDate(values.Get("endDate")),
		Goals:       []pdi.GoalValues{},
	}
	for g := 0; values.Has(fmt.Sprintf("goals.%d.id", g)); g++ {
		prefix := fmt.Sprintf("goals.%d.", g)
		goal := pdi.GoalValues{
			ID:          values.Get(prefix + "id"),
			Title:       strings.TrimSpace(values.Get(prefix + "title")),
			Description: values.Get(prefix + "description"),
			Tasks:       []pdi.TaskValues{},
		}
		for t := 0; values.Has(fmt.Sprintf("%stasks.%d.id", prefix, t)); t++ {
			taskPrefix := fmt.Sprintf("%stasks.%d.", prefix, t)
			goal.Tasks = append(goal.Tasks, pdi.TaskValues{
				ID:          values.Get(taskPrefix + "id"),
				Description: strings.TrimSpace(values.Get(taskPrefix + "description")),
				Completed:   values.Get(taskPrefix+"completed") == "true",
			})
		}
		out.Goals = append(out.Goals, goal)
	}
	return out
}

func optionalDate(raw string) *time.Time {
	parsed, err := shared.ParseDate(strings.TrimSpace(raw))
	if err != nil || parsed.IsZero() {
		return nil
	}
	return &parsed
}

func (h *Handler) renderForm(w http.ResponseWriter, r *http.Request, status int, form *pdi.PlanForm, issues forms.Issues, submitted string, flash *web.Flash) {
	opts, err := h.Service.Options(r.Context())
	if err != nil {
		h.Pages.Error(w, r, err)
		return
	}
	action := pdi.CreateHref
	if form.IsEdit() {
		action = fmt.Sprintf("/pdi/%d/edit", form.PlanID)
	}
	h.Pages.Render(w, r, status, "pdi_form", formView{
		Form:      form,
		Options:   opts,
		Issues:    issues,
		Action:    action,
		Submitted: submitted,
	}, flash)
}
