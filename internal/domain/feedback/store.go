package feedback

import (
	"context"
	"fmt"
	"sort"
)

// Store serves demonstration sessions held in memory. It is read-only after
// construction and safe for concurrent use.
type Store struct {
	sessions []Session
	byID     map[int]int
	options  Options
}

func NewStore(sessions []Session, options Options) (*Store, error) {
	s := &Store{
		sessions: make([]Session, 0, len(sessions)),
		byID:     make(map[int]int, len(sessions)),
		options:  options,
	}
	for _, session := range sessions {
		session = session.clone()
		status, err := ParseStatus(string(session.Status))
		if err != nil {
			return nil, fmt.Errorf("session %d: %w", session.ID, err)
		}
		session.Status = status
		for i, action := range session.Actions {
			actionStatus, err := ParseActionStatus(string(action.Status))
			if err != nil {
				return nil, fmt.Errorf("session %d action %d: %w", session.ID, action.ID, err)
			}
			session.Actions[i].Status = actionStatus
		}
		if _, dup := s.byID[session.ID]; dup {
			return nil, fmt.Errorf("duplicate feedback session id %d", session.ID)
		}
		s.byID[session.ID] = len(s.sessions)
		s.sessions = append(s.sessions, session)
	}
	return s, nil
}

func (s *Store) ListSessions(ctx context.Context) ([]Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]Session, 0, len(s.sessions))
	for _, session := range s.sessions {
		out = append(out, session.clone())
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (s *Store) GetSession(ctx context.Context, id int) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, err
	}
	i, ok := s.byID[id]
	if !ok {
		return Session{}, fmt.Errorf("%w: %d", ErrSessionNotFound, id)
	}
	return s.sessions[i].clone(), nil
}

func (s *Store) Options(ctx context.Context) (Options, error) {
	if err := ctx.Err(); err != nil {
		return Options{}, err
	}
	return Options{
		Team:      append([]TeamMember(nil), s.options.Team...),
		TimeSlots: append([]string(nil), s.options.TimeSlots...),
		Locations: append([]string(nil), s.options.Locations...),
	}, nil
}
