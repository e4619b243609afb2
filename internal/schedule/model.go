package schedule

import (
	"net/http"

	"github.com/campusrec/facility-booking-backend/internal/pkg/apperror"
)

var (
	ErrInvalidTimeFormat = apperror.New(http.StatusBadRequest, "invalid time format")
	ErrInvalidDateFormat = apperror.New(http.StatusBadRequest, "invalid date format")
)

// Slot is a single bookable (facility, court, date, time) cell.
// Rows are pre-generated for the whole scheduling window and only ever
// mutated by the reservation flow toggling IsBooked.
type Slot struct {
	ID           int64
	FacilityID   int64
	FacilityName string
	CourtNumber  int
	Date         string // "2006-01-02"
	Time         string // canonical 24-hour "15:04"
	IsBooked     bool
}

// Cell identifies a booked (court, time) pair within one facility-day,
// for calendar-rendering collaborators.
type Cell struct {
	CourtNumber int    `json:"court"`
	Time        string `json:"time"`
}

// FacilitySeed describes one catalog entry to create during grid seeding.
type FacilitySeed struct {
	Name       string
	Sport      string
	CourtCount int
}
