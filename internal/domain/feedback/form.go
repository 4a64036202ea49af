package feedback

import (
	"strings"
	"time"

	"hrpulse/internal/domain/forms"
)

// ScheduleValues is the single source of truth for the scheduling form.
type ScheduleValues struct {
	Employee string     `json:"employee" validate:"required"`
	Date     *time.Time `json:"date" validate:"required"`
	TimeSlot string     `json:"timeSlot" validate:"required"`
	Location string     `json:"location" validate:"required"`
	Notes    string     `json:"notes" validate:"max=500"`
	Topics   []string   `json:"topics" validate:"min=1,dive,required"`
}

var scheduleMessages = forms.Messages{
	"employee.required": "Please select an employee",
	"date.required":     "Please select a date",
	"timeSlot.required": "Please select a time slot",
	"location.required": "Please provide a location",
	"notes.max":         "Notes should be less than 500 characters",
	"topics.min":        "Add at least one topic to discuss",
	"topics.required":   "Topics cannot be empty",
}

// AddTopic appends the trimmed topic unless it is empty or already present
// (exact match). The input slice is not modified.
func AddTopic(topics []string, topic string) ([]string, bool) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return topics, false
	}
	for _, existing := range topics {
		if existing == topic {
			return topics, false
		}
	}
	out := make([]string, 0, len(topics)+1)
	out = append(out, topics...)
	return append(out, topic), true
}

// RemoveTopic drops topic from topics. The input slice is not modified.
func RemoveTopic(topics []string, topic string) ([]string, bool) {
	out := make([]string, 0, len(topics))
	removed := false
	for _, existing := range topics {
		if existing == topic {
			removed = true
			continue
		}
		out = append(out, existing)
	}
	if !removed {
		return topics, false
	}
	return out, true
}

// ScheduleForm is the scheduling form state. SessionID is zero when the form
// creates a new session.
type ScheduleForm struct {
	SessionID int
	Values    ScheduleValues
	Today     time.Time
}

func NewScheduleForm(today time.Time) *ScheduleForm {
	return &ScheduleForm{
		Values: ScheduleValues{Topics: []string{}},
		Today:  DateOnly(today),
	}
}

// EditScheduleForm prefills the form from an existing session.
func EditScheduleForm(s Session, today time.Time) *ScheduleForm {
	date := DateOnly(s.Date)
	return &ScheduleForm{
		SessionID: s.ID,
		Values: ScheduleValues{
			Employee: s.EmployeeID,
			Date:     &date,
			TimeSlot: s.TimeSlot,
			Location: s.Location,
			Notes:    s.Notes,
			Topics:   append([]string{}, s.Topics...),
		},
		Today: DateOnly(today),
	}
}

func (f *ScheduleForm) IsEdit() bool {
	return f.SessionID > 0
}

// SelectDate sets the date only when the picker offers it. An unselectable
// day leaves the current value untouched.
func (f *ScheduleForm) SelectDate(day time.Time) bool {
	if !Selectable(day, f.Today) {
		return false
	}
	d := DateOnly(day)
	f.Values.Date = &d
	return true
}

func (f *ScheduleForm) AddTopic(topic string) bool {
	topics, ok := AddTopic(f.Values.Topics, topic)
	f.Values.Topics = topics
	return ok
}

func (f *ScheduleForm) RemoveTopic(topic string) bool {
	topics, ok := RemoveTopic(f.Values.Topics, topic)
	f.Values.Topics = topics
	return ok
}

// Validate checks the whole form. Employee and time slot must be offered by
// opts; an edited session keeps its stored date even when it is no longer
// selectable.
func (f *ScheduleForm) Validate(opts Options) error {
	var extra forms.Issues
	v := f.Values
	if v.Employee != "" {
		if _, ok := opts.Member(v.Employee); !ok {
			extra = append(extra, forms.Issue{Field: "employee", Reason: scheduleMessages["employee.required"]})
		}
	}
	if v.TimeSlot != "" && len(opts.TimeSlots) > 0 && !opts.hasTimeSlot(v.TimeSlot) {
		extra = append(extra, forms.Issue{Field: "timeSlot", Reason: scheduleMessages["timeSlot.required"]})
	}
	if v.Date != nil && !f.IsEdit() && !Selectable(*v.Date, f.Today) {
		extra = append(extra, forms.Issue{Field: "date", Reason: "Please select a weekday from today onwards"})
	}
	if len(extra) == 0 {
		return forms.Validate(&f.Values, scheduleMessages)
	}
	return forms.Merge(forms.Validate(&f.Values, scheduleMessages), extra)
}
