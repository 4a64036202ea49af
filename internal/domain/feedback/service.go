package feedback

import (
	"context"
	"strconv"
	"time"

	"hrpulse/internal/domain/audit"
)

// Recorder captures successful form submissions.
type Recorder interface {
	Record(ctx context.Context, action, entityType, entityID, requestID, ip string, values any) error
}

// SubmitMeta identifies the request that submitted a form.
type SubmitMeta struct {
	RequestID string
	IP        string
}

type Service struct {
	store    StoreAPI
	recorder Recorder
	Now      func() time.Time
}

func NewService(store StoreAPI, recorder Recorder) *Service {
	return &Service{store: store, recorder: recorder, Now: time.Now}
}

func (s *Service) Today() time.Time {
	return DateOnly(s.Now())
}

func (s *Service) List(ctx context.Context, f Filter) (List, error) {
	sessions, err := s.store.ListSessions(ctx)
	if err != nil {
		return List{}, err
	}
	return BuildList(sessions, f), nil
}

func (s *Service) Get(ctx context.Context, id int) (Session, error) {
	return s.store.GetSession(ctx, id)
}

// Upcoming returns scheduled sessions in date order, at most limit of them
// when limit is positive.
func (s *Service) Upcoming(ctx context.Context, limit int) ([]Session, error) {
	sessions, err := s.store.ListSessions(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Session, 0, len(sessions))
	for _, session := range sessions {
		if session.Status != StatusScheduled {
			continue
		}
		out = append(out, session)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// CountByStatus returns how many sessions hold each status. Every declared
// status is present in the result.
func (s *Service) CountByStatus(ctx context.Context) (map[Status]int, error) {
	sessions, err := s.store.ListSessions(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[Status]int, len(Statuses))
	for _, status := range Statuses {
		counts[status] = 0
	}
	for _, session := range sessions {
		counts[session.Status]++
	}
	return counts, nil
}

func (s *Service) Options(ctx context.Context) (Options, error) {
	return s.store.Options(ctx)
}

func (s *Service) NewForm() *ScheduleForm {
	return NewScheduleForm(s.Now())
}

func (s *Service) EditForm(ctx context.Context, id int) (*ScheduleForm, error) {
	session, err := s.store.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	return EditScheduleForm(session, s.Now()), nil
}

func (s *Service) Calendar(year int, month time.Month) []CalendarDay {
	return Month(year, month, s.Now())
}

// Submit validates the form and captures its values. Nothing is stored; the
// captured values are returned to the caller.
func (s *Service) Submit(ctx context.Context, form *ScheduleForm, meta SubmitMeta) (ScheduleValues, error) {
	opts, err := s.store.Options(ctx)
	if err != nil {
		return ScheduleValues{}, err
	}
	if err := form.Validate(opts); err != nil {
		return ScheduleValues{}, err
	}
	captured := form.Values
	captured.Topics = append([]string{}, form.Values.Topics...)

	if s.recorder != nil {
		action, entityID := audit.ActionFeedbackSchedule, ""
		if form.IsEdit() {
			action, entityID = audit.ActionFeedbackEdit, strconv.Itoa(form.SessionID)
		}
		if err := s.recorder.Record(ctx, action, "feedback_session", entityID, meta.RequestID, meta.IP, captured); err != nil {
			return ScheduleValues{}, err
		}
	}
	return captured, nil
}
