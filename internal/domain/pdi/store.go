package pdi

import (
	"context"
	"fmt"
	"sort"
)

// Store serves demonstration plans held in memory. It is read-only after
// construction and safe for concurrent use.
type Store struct {
	plans   []Plan
	byID    map[int]int
	options Options
}

func NewStore(plans []Plan, options Options) (*Store, error) {
	s := &Store{
		plans:   make([]Plan, 0, len(plans)),
		byID:    make(map[int]int, len(plans)),
		options: Options{Team: append([]TeamMember(nil), options.Team...)},
	}
	for _, plan := range plans {
		plan = plan.clone()
		status, err := ParseStatus(string(plan.Status))
		if err != nil {
			return nil, fmt.Errorf("plan %d: %w", plan.ID, err)
		}
		plan.Status = status
		if plan.EndDate.Before(plan.StartDate) {
			return nil, fmt.Errorf("plan %d: end date before start date", plan.ID)
		}
		if _, dup := s.byID[plan.ID]; dup {
			return nil, fmt.Errorf("duplicate development plan id %d", plan.ID)
		}
		s.byID[plan.ID] = len(s.plans)
		s.plans = append(s.plans, plan)
	}
	return s, nil
}

func (s *Store) ListPlans(ctx context.Context) ([]Plan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]Plan, 0, len(s.plans))
	for _, plan := range s.plans {
		out = append(out, plan.clone())
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) GetPlan(ctx context.Context, id int) (Plan, error) {
	if err := ctx.Err(); err != nil {
		return Plan{}, err
	}
	i, ok := s.byID[id]
	if !ok {
		return Plan{}, fmt.Errorf("%w: %d", ErrPlanNotFound, id)
	}
	return s.plans[i].clone(), nil
}

func (s *Store) Options(ctx context.Context) (Options, error) {
	if err := ctx.Err(); err != nil {
		return Options{}, err
	}
	return Options{Team: append([]TeamMember(nil), s.options.Team...)}, nil
}
