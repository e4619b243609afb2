package http

import (
	"time"

	"github.com/campusrec/facility-booking-backend/internal/booking"
)

// CreateBookingBody is the payload for POST /v1/bookings.
type CreateBookingBody struct {
	FacilityID  int64  `json:"facility_id" binding:"required"`
	CourtNumber int    `json:"court_number" binding:"required,min=1"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
}

// BookingResponse is the shape of a booking in API responses.
type BookingResponse struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	FacilityID    int64     `json:"facility_id"`
	FacilityName  string    `json:"facility_name"`
	CourtNumber   int       `json:"court_number"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	FormattedSlot string    `json:"formatted_slot"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		Username:      b.Username,
		FacilityID:    b.FacilityID,
		FacilityName:  b.FacilityName,
		CourtNumber:   b.CourtNumber,
		Date:          b.Date,
		Time:          b.Time,
		FormattedSlot: b.FormattedSlot,
		CreatedAt:     b.CreatedAt,
	}
}
