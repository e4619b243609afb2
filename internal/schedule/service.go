package schedule

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// DefaultCatalog is the static facility catalog seeded on first startup.
var DefaultCatalog = []FacilitySeed{
	{Name: "Volleyball Court", Sport: "Volleyball", CourtCount: 2},
	{Name: "Cricket Net", Sport: "Cricket", CourtCount: 2},
	{Name: "Basketball Court", Sport: "Basketball", CourtCount: 1},
	{Name: "Cricket Field", Sport: "Cricket", CourtCount: 1},
	{Name: "Football Field", Sport: "Football", CourtCount: 1},
	{Name: "Pickleball Court", Sport: "Pickleball", CourtCount: 1},
	{Name: "Badminton Court", Sport: "Badminton", CourtCount: 1},
	{Name: "Table Tennis Table", Sport: "Table Tennis", CourtCount: 2},
	{Name: "Carrom Board", Sport: "Carrom", CourtCount: 2},
}

// Service defines slot grid operations.
type Service interface {
	// Seed generates the slot grid for [today, today+windowDays).
	// Idempotent: a grid that already exists is left untouched.
	Seed(ctx context.Context, windowDays int) error

	// ListOpen returns the unbooked slots of a facility ordered by
	// (date, time).
	ListOpen(ctx context.Context, facilityID int64) ([]*Slot, error)

	// BookedCells returns the booked (court, time) pairs of one
	// facility-day, times in canonical 24-hour form.
	BookedCells(ctx context.Context, facilityID int64, date string) ([]Cell, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Seed(ctx context.Context, windowDays int) error {
	dates := WindowDates(time.Now(), windowDays)

	inserted, err := s.repo.Seed(ctx, DefaultCatalog, dates)
	if err != nil {
		return err
	}
	if inserted > 0 {
		zap.L().Info("seeded slot grid",
			zap.Int("slots", inserted),
			zap.Int("window_days", windowDays),
		)
	}
	return nil
}

func (s *service) ListOpen(ctx context.Context, facilityID int64) ([]*Slot, error) {
	return s.repo.ListOpen(ctx, facilityID)
}

func (s *service) BookedCells(ctx context.Context, facilityID int64, date string) ([]Cell, error) {
	normalized, err := ParseDate(date)
	if err != nil {
		return nil, err
	}
	return s.repo.BookedCells(ctx, facilityID, normalized)
}

// WindowDates returns the canonical date strings of the scheduling window
// [start, start+windowDays).
func WindowDates(start time.Time, windowDays int) []string {
	dates := make([]string, 0, windowDays)
	for offset := 0; offset < windowDays; offset++ {
		dates = append(dates, start.AddDate(0, 0, offset).Format(DateLayout))
	}
	return dates
}
