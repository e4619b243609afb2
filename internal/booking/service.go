package booking

import (
	"context"
	"fmt"

	"github.com/campusrec/facility-booking-backend/internal/facility"
	"github.com/campusrec/facility-booking-backend/internal/schedule"
)

// ReserveRequest carries the cell a user wants to claim. Date and Time may
// arrive in any supported wall-clock form; they are normalized before the
// slot lookup.
type ReserveRequest struct {
	UserID      string
	Username    string
	FacilityID  int64
	CourtNumber int
	Date        string
	Time        string
}

// Service defines the reservation business logic.
type Service interface {
	Reserve(ctx context.Context, req ReserveRequest) (*Booking, error)
	Cancel(ctx context.Context, userID, bookingID string) error
	ListByUser(ctx context.Context, userID string) ([]*Booking, error)
}

type service struct {
	repo       Repository
	facService facility.Service
}

func NewService(repo Repository, facService facility.Service) Service {
	return &service{
		repo:       repo,
		facService: facService,
	}
}

func (s *service) Reserve(ctx context.Context, req ReserveRequest) (*Booking, error) {
	date, err := schedule.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	slotTime, err := schedule.ParseTime(req.Time)
	if err != nil {
		return nil, err
	}

	// Court numbers outside the facility's range can never match a slot;
	// reject them before touching the grid.
	f, err := s.facService.GetByID(ctx, req.FacilityID)
	if err != nil {
		return nil, err
	}
	if req.CourtNumber < 1 || req.CourtNumber > f.CourtCount {
		return nil, ErrInvalidCourt
	}

	label, err := schedule.Format12Hour(slotTime)
	if err != nil {
		return nil, err
	}

	b := &Booking{
		UserID:        req.UserID,
		Username:      req.Username,
		FacilityID:    req.FacilityID,
		FacilityName:  f.Name,
		CourtNumber:   req.CourtNumber,
		Date:          date,
		Time:          slotTime,
		FormattedSlot: fmt.Sprintf("%s at %s (Court %d)", date, label, req.CourtNumber),
	}

	if err := s.repo.Reserve(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *service) Cancel(ctx context.Context, userID, bookingID string) error {
	return s.repo.Cancel(ctx, bookingID, userID)
}

func (s *service) ListByUser(ctx context.Context, userID string) ([]*Booking, error) {
	return s.repo.ListByUser(ctx, userID)
}
