package pdi

import "context"

type StoreAPI interface {
	ListPlans(ctx context.Context) ([]Plan, error)
	GetPlan(ctx context.Context, id int) (Plan, error)
	Options(ctx context.Context) (Options, error)
}

// Options are the choices offered by the plan form.
type Options struct {
	Team []TeamMember `json:"team"`
}

func (o Options) Member(id string) (TeamMember, bool) {
	for _, m := range o.Team {
		if m.ID == id {
			return m, true
		}
	}
	return TeamMember{}, false
}

func (o Options) HasMember(id string) bool {
	_, ok := o.Member(id)
	return ok
}
