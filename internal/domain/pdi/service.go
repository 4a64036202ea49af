package pdi

import (
	"context"
	"io"
	"strconv"

	"hrpulse/internal/domain/audit"
)

// Recorder captures successful form submissions.
type Recorder interface {
	Record(ctx context.Context, action, entityType, entityID, requestID, ip string, values any) error
}

type SubmitMeta struct {
	RequestID string
	IP        string
}

type Service struct {
	store    StoreAPI
	recorder Recorder
}

func NewService(store StoreAPI, recorder Recorder) *Service {
	return &Service{store: store, recorder: recorder}
}

func (s *Service) List(ctx context.Context, f Filter) (List, error) {
	plans, err := s.store.ListPlans(ctx)
	if err != nil {
		return List{}, err
	}
	return BuildList(plans, f), nil
}

func (s *Service) Get(ctx context.Context, id int) (Plan, error) {
	return s.store.GetPlan(ctx, id)
}

func (s *Service) Options(ctx context.Context) (Options, error) {
	return s.store.Options(ctx)
}

func (s *Service) NewForm() *PlanForm {
	return NewPlanForm()
}

func (s *Service) EditForm(ctx context.Context, id int) (*PlanForm, error) {
	plan, err := s.store.GetPlan(ctx, id)
	if err != nil {
		return nil, err
	}
	return EditPlanForm(plan), nil
}

// ForEmployee returns the first active plan of the given employee id.
func (s *Service) ForEmployee(ctx context.Context, employeeID string) (Plan, error) {
	plans, err := s.store.ListPlans(ctx)
	if err != nil {
		return Plan{}, err
	}
	for _, p := range plans {
		if p.EmployeeID == employeeID && p.Status == StatusActive {
			return p, nil
		}
	}
	return Plan{}, ErrPlanNotFound
}

// Submit validates the form and captures its values. Nothing is stored.
func (s *Service) Submit(ctx context.Context, form *PlanForm, meta SubmitMeta) (PlanValues, error) {
	opts, err := s.store.Options(ctx)
	if err != nil {
		return PlanValues{}, err
	}
	if err := form.Validate(opts); err != nil {
		return PlanValues{}, err
	}
	captured := form.Values.clone()

	if s.recorder != nil {
		action, entityID := audit.ActionPlanCreate, ""
		if form.IsEdit() {
			action, entityID = audit.ActionPlanEdit, strconv.Itoa(form.PlanID)
		}
		if err := s.recorder.Record(ctx, action, "development_plan", entityID, meta.RequestID, meta.IP, captured); err != nil {
			return PlanValues{}, err
		}
	}
	return captured, nil
}

// Export writes the plan with the given id as a PDF document.
func (s *Service) Export(ctx context.Context, id int, w io.Writer) error {
	plan, err := s.store.GetPlan(ctx, id)
	if err != nil {
		return err
	}
	return WritePDF(w, plan)
}
