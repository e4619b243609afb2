package http

import (
	"github.com/campusrec/facility-booking-backend/internal/facility"
)

// FacilityResponse is the shape of a catalog entry in API responses.
type FacilityResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Sport      string `json:"sport"`
	CourtCount int    `json:"court_count"`
}

func NewFacilityResponse(f *facility.Facility) FacilityResponse {
	return FacilityResponse{
		ID:         f.ID,
		Name:       f.Name,
		Sport:      f.Sport,
		CourtCount: f.CourtCount,
	}
}

// SportResponse is one entry of GET /v1/sports.
type SportResponse struct {
	Sport         string `json:"sport"`
	FacilityCount int    `json:"facility_count"`
}
