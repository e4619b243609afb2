package booking

import (
	"net/http"
	"time"

	"github.com/campusrec/facility-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound          = apperror.New(http.StatusNotFound, "booking not found")
	ErrSlotNotFound      = apperror.New(http.StatusNotFound, "slot not available")
	ErrSlotAlreadyBooked = apperror.New(http.StatusConflict, "slot already booked")
	ErrPermissionDenied  = apperror.New(http.StatusForbidden, "permission denied")
	ErrInvalidCourt      = apperror.New(http.StatusBadRequest, "invalid court number")
)

// Booking is a user's claim on one slot. It exists iff the matching slot
// is marked booked; Reserve and Cancel keep the pair consistent inside a
// single transaction.
type Booking struct {
	ID            string // UUID
	UserID        string
	Username      string
	FacilityID    int64
	FacilityName  string
	CourtNumber   int
	Date          string // "2006-01-02"
	Time          string // canonical 24-hour "15:04"
	FormattedSlot string // display string, e.g. `2025-01-02 at 2:00 PM (Court 1)`
	CreatedAt     time.Time
}
