package pdi

import (
	"fmt"
	"strings"

	"hrpulse/internal/domain/listing"
)

var statusStyles = map[Status]listing.Style{
	StatusActive:    {Badge: "bg-emerald-100 text-emerald-800 border-emerald-200", Label: "Active"},
	StatusDraft:     {Badge: "bg-amber-100 text-amber-800 border-amber-200", Label: "Draft"},
	StatusCompleted: {Badge: "bg-blue-100 text-blue-800 border-blue-200", Label: "Completed"},
}

var goalStyles = map[GoalStatus]listing.Style{
	GoalCompleted:  {Badge: "text-emerald-600 bg-emerald-100", Label: "Completed", Icon: "check-circle"},
	GoalInProgress: {Badge: "text-amber-600 bg-amber-100", Label: "In Progress", Icon: "calendar"},
	GoalNotStarted: {Badge: "text-slate-600 bg-slate-100", Label: "Not Started", Icon: "calendar"},
}

func ParseStatus(raw string) (Status, error) {
	value := Status(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := statusStyles[value]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
	}
	return value, nil
}

func (s Status) Style() listing.Style {
	style, ok := statusStyles[s]
	if !ok {
		panic(fmt.Sprintf("pdi: no style for status %q", string(s)))
	}
	return style
}

func (s GoalStatus) Style() listing.Style {
	style, ok := goalStyles[s]
	if !ok {
		panic(fmt.Sprintf("pdi: no style for goal status %q", string(s)))
	}
	return style
}

var bucketSpecs = []listing.BucketSpec[Status]{
	{Key: BucketActive, Label: "Active", Status: StatusActive, EmptyMessage: "No active development plans"},
	{Key: BucketDraft, Label: "Drafts", Status: StatusDraft, EmptyMessage: "No draft development plans"},
	{Key: BucketCompleted, Label: "Completed", Status: StatusCompleted, EmptyMessage: "No completed development plans"},
}

type Filter struct {
	Query  string
	Status *Status
}

func ParseFilter(query, status string) (Filter, error) {
	f := Filter{Query: query}
	status = strings.TrimSpace(status)
	if status == "" || strings.EqualFold(status, listing.StatusAll) {
		return f, nil
	}
	parsed, err := ParseStatus(status)
	if err != nil {
		return Filter{}, err
	}
	f.Status = &parsed
	return f, nil
}

// Card is the list summary of one plan.
type Card struct {
	ID             int           `json:"id"`
	Employee       Employee      `json:"employee"`
	Title          string        `json:"title"`
	StartDate      string        `json:"startDate"`
	EndDate        string        `json:"endDate"`
	Status         Status        `json:"status"`
	Style          listing.Style `json:"style"`
	Progress       int           `json:"progress"`
	Goals          int           `json:"goals"`
	CompletedGoals int           `json:"completedGoals"`
	DetailHref     string        `json:"detailHref"`
}

func NewCard(p Plan) Card {
	return Card{
		ID:             p.ID,
		Employee:       p.Employee,
		Title:          p.Title,
		StartDate:      p.StartDate.Format("Jan 2, 2006"),
		EndDate:        p.EndDate.Format("Jan 2, 2006"),
		Status:         p.Status,
		Style:          p.Status.Style(),
		Progress:       p.Progress(),
		Goals:          len(p.Goals),
		CompletedGoals: p.CompletedGoals(),
		DetailHref:     fmt.Sprintf("/pdi/%d", p.ID),
	}
}

type List struct {
	Query   string                 `json:"query"`
	Status  string                 `json:"status"`
	Total   int                    `json:"total"`
	Buckets []listing.Bucket[Card] `json:"buckets"`
}

func (l List) Bucket(key string) (listing.Bucket[Card], bool) {
	for _, b := range l.Buckets {
		if b.Key == key {
			return b, true
		}
	}
	return listing.Bucket[Card]{}, false
}

// BuildList filters plans by employee name and status, then partitions them
// into the active, draft and completed tabs.
func BuildList(plans []Plan, f Filter) List {
	matched := listing.Filter(plans, f.Query, f.Status,
		func(p Plan) string { return p.Employee.Name },
		func(p Plan) Status { return p.Status },
	)
	cards := make([]Card, 0, len(matched))
	for _, p := range matched {
		cards = append(cards, NewCard(p))
	}
	status := listing.StatusAll
	if f.Status != nil {
		status = string(*f.Status)
	}
	return List{
		Query:   f.Query,
		Status:  status,
		Total:   len(cards),
		Buckets: listing.Partition(cards, bucketSpecs, func(c Card) Status { return c.Status }, CreateLabel, CreateHref),
	}
}
