// Package audit keeps the in-memory log of captured form submissions. Forms
// do not persist anything; a successful submission is recorded here and
// echoed back to the caller.
package audit

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	ActionFeedbackSchedule = "feedback.session.schedule"
	ActionFeedbackEdit     = "feedback.session.edit"
	ActionPlanCreate       = "pdi.plan.create"
	ActionPlanEdit         = "pdi.plan.edit"
	ActionProfileUpdate    = "profile.update"
)

const defaultCapacity = 200

type Event struct {
	ID         string          `json:"id"`
	Action     string          `json:"action"`
	EntityType string          `json:"entityType"`
	EntityID   string          `json:"entityId,omitempty"`
	RequestID  string          `json:"requestId,omitempty"`
	IP         string          `json:"ip,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	Values     json.RawMessage `json:"values,omitempty"`
}

type Filter struct {
	Action     string
	EntityType string
}

func (f Filter) matches(evt Event) bool {
	if f.Action != "" && evt.Action != f.Action {
		return false
	}
	if f.EntityType != "" && evt.EntityType != f.EntityType {
		return false
	}
	return true
}

// Service is a bounded, newest-first event log safe for concurrent use.
type Service struct {
	mu       sync.RWMutex
	events   []Event
	capacity int
	now      func() time.Time
}

func New(capacity int) *Service {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &Service{capacity: capacity, now: time.Now}
}

func (s *Service) Record(ctx context.Context, action, entityType, entityID, requestID, ip string, values any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var raw json.RawMessage
	if values != nil {
		payload, err := json.Marshal(values)
		if err != nil {
			return err
		}
		raw = payload
	}
	evt := Event{
		ID:         uuid.NewString(),
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		RequestID:  requestID,
		IP:         ip,
		CreatedAt:  s.now().UTC(),
		Values:     raw,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append([]Event{evt}, s.events...)
	if len(s.events) > s.capacity {
		s.events = s.events[:s.capacity]
	}
	return nil
}

func (s *Service) Count(ctx context.Context, filter Filter) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0
	for _, evt := range s.events {
		if filter.matches(evt) {
			total++
		}
	}
	return total, nil
}

func (s *Service) List(ctx context.Context, filter Filter, limit, offset int) ([]Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Event, 0)
	skipped := 0
	for _, evt := range s.events {
		if !filter.matches(evt) {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, evt)
	}
	return out, nil
}
