package profile

import (
	"context"

	"hrpulse/internal/domain/audit"
)

type Recorder interface {
	Record(ctx context.Context, action, entityType, entityID, requestID, ip string, values any) error
}

type SubmitMeta struct {
	RequestID string
	IP        string
}

// Toast is the confirmation shown after a successful update.
type Toast struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Result is what a successful submission hands back to the caller.
type Result struct {
	Values   Values `json:"values"`
	Toast    Toast  `json:"toast"`
	Redirect string `json:"redirect"`
}

const Path = "/profile"

// UpdatedToast confirms a successful profile update.
var UpdatedToast = Toast{
	Title:       "Profile Updated",
	Description: "Your profile has been updated successfully.",
}

type Service struct {
	store    StoreAPI
	recorder Recorder
}

func NewService(store StoreAPI, recorder Recorder) *Service {
	return &Service{store: store, recorder: recorder}
}

func (s *Service) Current(ctx context.Context) (Profile, error) {
	return s.store.CurrentProfile(ctx)
}

func (s *Service) Options(ctx context.Context) (Options, error) {
	return s.store.Options(ctx)
}

func (s *Service) EditForm(ctx context.Context) (*Form, error) {
	p, err := s.store.CurrentProfile(ctx)
	if err != nil {
		return nil, err
	}
	opts, err := s.store.Options(ctx)
	if err != nil {
		return nil, err
	}
	return EditForm(p, opts), nil
}

// Submit validates and captures the profile values. The stored profile is
// left unchanged.
func (s *Service) Submit(ctx context.Context, form *Form, meta SubmitMeta) (Result, error) {
	if err := form.Validate(); err != nil {
		return Result{}, err
	}
	captured := form.Values
	captured.Skills = append([]string{}, form.Values.Skills...)
	if s.recorder != nil {
		if err := s.recorder.Record(ctx, audit.ActionProfileUpdate, "profile", "me", meta.RequestID, meta.IP, captured); err != nil {
			return Result{}, err
		}
	}
	return Result{
		Values:   captured,
		Toast:    UpdatedToast,
		Redirect: Path,
	}, nil
}
