package business

import (
	"context"
	"errors"
)

// ErrNotFound signals that no profile row exists yet.
var ErrNotFound = errors.New("business: profile not found")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=business
type Repository interface {
	GetProfile(ctx context.Context) (Profile, error)
	SaveProfile(ctx context.Context, p Profile) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get returns the stored profile, or the default one if none was saved.
func (s *Service) Get(ctx context.Context) (Profile, error) {
	p, err := s.repo.GetProfile(ctx)
	if errors.Is(err, ErrNotFound) {
		return Default(), nil
	}

	return p, err
}

func (s *Service) Update(ctx context.Context, p Profile) error {
	return s.repo.SaveProfile(ctx, p)
}
