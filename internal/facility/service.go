package facility

import (
	"context"
)

// Service defines read operations over the facility catalog.
type Service interface {
	List(ctx context.Context) ([]*Facility, error)
	GetByID(ctx context.Context, id int64) (*Facility, error)
	ListBySport(ctx context.Context, sport string) ([]*Facility, error)
	Sports(ctx context.Context) ([]SportCount, error)

	// ResolveSport maps a sport name to the facility with the lowest id
	// offering it. Returns ErrNotFound when no facility offers the sport.
	ResolveSport(ctx context.Context, sport string) (*Facility, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]*Facility, error) {
	return s.repo.List(ctx)
}

func (s *service) GetByID(ctx context.Context, id int64) (*Facility, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListBySport(ctx context.Context, sport string) ([]*Facility, error) {
	return s.repo.ListBySport(ctx, sport)
}

func (s *service) Sports(ctx context.Context) ([]SportCount, error) {
	return s.repo.Sports(ctx)
}

func (s *service) ResolveSport(ctx context.Context, sport string) (*Facility, error) {
	facilities, err := s.repo.ListBySport(ctx, sport)
	if err != nil {
		return nil, err
	}
	if len(facilities) == 0 {
		return nil, ErrNotFound
	}
	return facilities[0], nil
}
