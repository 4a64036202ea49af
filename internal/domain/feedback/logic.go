package feedback

import (
	"fmt"
	"strings"

	"hrpulse/internal/domain/listing"
)

var statusStyles = map[Status]listing.Style{
	StatusScheduled: {Badge: "bg-amber-100 text-amber-800 border-amber-200", Label: "Scheduled", Icon: "clock"},
	StatusCompleted: {Badge: "bg-emerald-100 text-emerald-800 border-emerald-200", Label: "Completed", Icon: "thumbs-up"},
	StatusCancelled: {Badge: "bg-rose-100 text-rose-800 border-rose-200", Label: "Cancelled", Icon: "alert-triangle"},
}

var actionStyles = map[ActionStatus]listing.Style{
	ActionNotStarted: {Badge: "bg-gray-300", Label: "Not Started"},
	ActionInProgress: {Badge: "bg-amber-500", Label: "In Progress"},
	ActionCompleted:  {Badge: "bg-emerald-500", Label: "Completed"},
}

// ParseStatus accepts the declared statuses case-insensitively. The
// "canceled" spelling is folded into StatusCancelled.
func ParseStatus(raw string) (Status, error) {
	value := Status(strings.ToLower(strings.TrimSpace(raw)))
	if value == "canceled" {
		value = StatusCancelled
	}
	if _, ok := statusStyles[value]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
	}
	return value, nil
}

func ParseActionStatus(raw string) (ActionStatus, error) {
	value := ActionStatus(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := actionStyles[value]; !ok {
		return "", fmt.Errorf("%w: action status %q", ErrUnknownStatus, raw)
	}
	return value, nil
}

// Style returns the badge descriptor for s. Statuses only enter the system
// through ParseStatus, so an unmapped value is a programming error.
func (s Status) Style() listing.Style {
	style, ok := statusStyles[s]
	if !ok {
		panic(fmt.Sprintf("feedback: no style for status %q", string(s)))
	}
	return style
}

func (s ActionStatus) Style() listing.Style {
	style, ok := actionStyles[s]
	if !ok {
		panic(fmt.Sprintf("feedback: no style for action status %q", string(s)))
	}
	return style
}

var bucketSpecs = []listing.BucketSpec[Status]{
	{Key: BucketUpcoming, Label: "Upcoming", Status: StatusScheduled, EmptyMessage: "No upcoming feedback sessions"},
	{Key: BucketCompleted, Label: "Completed", Status: StatusCompleted, EmptyMessage: "No completed feedback sessions"},
	{Key: BucketCancelled, Label: "Cancelled", Status: StatusCancelled, EmptyMessage: "No cancelled feedback sessions"},
}

// Filter is the list page query: a free-text employee name search and an
// optional exact status.
type Filter struct {
	Query  string
	Status *Status
}

// ParseFilter builds a Filter from raw query parameters. An empty status or
// "all" disables the status restriction.
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

type Card struct {
	Session
	Style      listing.Style `json:"style"`
	DetailHref string        `json:"detailHref"`
}

func NewCard(s Session) Card {
	return Card{Session: s, Style: s.Status.Style(), DetailHref: fmt.Sprintf("/feedback/%d", s.ID)}
}

type List struct {
	Query   string                 `json:"query"`
	Status  string                 `json:"status"`
	Total   int                    `json:"total"`
	Buckets []listing.Bucket[Card] `json:"buckets"`
}

// BuildList applies f to sessions and partitions the matches into the
// upcoming, completed and cancelled tabs.
func BuildList(sessions []Session, f Filter) List {
	matched := listing.Filter(sessions, f.Query, f.Status,
		func(s Session) string { return s.Employee.Name },
		func(s Session) Status { return s.Status },
	)
	cards := make([]Card, 0, len(matched))
	for _, s := range matched {
		cards = append(cards, NewCard(s))
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

func (l List) Bucket(key string) (listing.Bucket[Card], bool) {
	for _, b := range l.Buckets {
		if b.Key == key {
			return b, true
		}
	}
	return listing.Bucket[Card]{}, false
}
