package facility

import (
	"net/http"

	"github.com/campusrec/facility-booking-backend/internal/pkg/apperror"
)

var ErrNotFound = apperror.New(http.StatusNotFound, "facility not found")

// Facility is a physical resource category offering one or more
// identically numbered courts. The catalog is static seed data and is
// never mutated at runtime.
type Facility struct {
	ID         int64
	Name       string
	Sport      string
	CourtCount int
}

// SportCount pairs a sport with the number of facilities offering it.
type SportCount struct {
	Sport         string
	FacilityCount int
}
