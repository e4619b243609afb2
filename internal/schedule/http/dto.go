package http

import (
	"github.com/campusrec/facility-booking-backend/internal/schedule"
)

// SlotResponse is the shape of an open slot in API responses.
type SlotResponse struct {
	ID           int64  `json:"id"`
	FacilityID   int64  `json:"facility_id"`
	FacilityName string `json:"facility_name"`
	CourtNumber  int    `json:"court_number"`
	Date         string `json:"date"`
	Time         string `json:"time"`
}

func NewSlotResponse(s *schedule.Slot) SlotResponse {
	return SlotResponse{
		ID:           s.ID,
		FacilityID:   s.FacilityID,
		FacilityName: s.FacilityName,
		CourtNumber:  s.CourtNumber,
		Date:         s.Date,
		Time:         s.Time,
	}
}
