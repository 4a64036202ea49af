package profile

import (
	"context"
	"errors"
)

var ErrNoProfile = errors.New("profile not configured")

type StoreAPI interface {
	CurrentProfile(ctx context.Context) (Profile, error)
	Options(ctx context.Context) (Options, error)
}

// Store holds the signed-in user's profile in memory.
type Store struct {
	profile *Profile
	options Options
}

func NewStore(p *Profile, opts Options) *Store {
	s := &Store{options: opts}
	if p != nil {
		cp := p.clone()
		s.profile = &cp
	}
	return s
}

func (s *Store) CurrentProfile(ctx context.Context) (Profile, error) {
	if err := ctx.Err(); err != nil {
		return Profile{}, err
	}
	if s.profile == nil {
		return Profile{}, ErrNoProfile
	}
	return s.profile.clone(), nil
}

func (s *Store) Options(ctx context.Context) (Options, error) {
	if err := ctx.Err(); err != nil {
		return Options{}, err
	}
	return Options{
		Departments: append([]Option(nil), s.options.Departments...),
		Managers:    append([]Option(nil), s.options.Managers...),
	}, nil
}
