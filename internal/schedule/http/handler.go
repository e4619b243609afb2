package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campusrec/facility-booking-backend/internal/facility"
	"github.com/campusrec/facility-booking-backend/internal/pkg/apperror"
	"github.com/campusrec/facility-booking-backend/internal/pkg/response"
	"github.com/campusrec/facility-booking-backend/internal/schedule"
)

// defaultFacilityID is used when neither a facility nor a sport is given,
// matching the booking page's default selection.
const defaultFacilityID = 1

type Handler struct {
	service    schedule.Service
	facService facility.Service
}

func NewHandler(service schedule.Service, facService facility.Service) *Handler {
	return &Handler{
		service:    service,
		facService: facService,
	}
}

// ListOpen returns the open slots of one facility. The facility is chosen
// by ?facility=<id>, or by ?sport=<name> resolved to the lowest-id
// facility offering that sport.
func (h *Handler) ListOpen(c *gin.Context) {
	ctx := c.Request.Context()

	facilityID, err := h.resolveFacilityID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	slots, err := h.service.ListOpen(ctx, facilityID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]SlotResponse, len(slots))
	for i, s := range slots {
		items[i] = NewSlotResponse(s)
	}

	c.JSON(http.StatusOK, items)
}

// BookedCells returns the booked (court, time) pairs of one facility-day.
// Both query params are required; times are canonical 24-hour.
func (h *Handler) BookedCells(c *gin.Context) {
	facilityParam := c.Query("facility")
	dateParam := c.Query("date")
	if facilityParam == "" || dateParam == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing params"})
		return
	}

	facilityID, err := strconv.ParseInt(facilityParam, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid facility id"})
		return
	}

	cells, err := h.service.BookedCells(c.Request.Context(), facilityID, dateParam)
	if err != nil {
		response.Error(c, err)
		return
	}

	if cells == nil {
		cells = make([]schedule.Cell, 0)
	}
	c.JSON(http.StatusOK, cells)
}

func (h *Handler) resolveFacilityID(c *gin.Context) (int64, error) {
	if v := c.Query("facility"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, apperror.New(http.StatusBadRequest, "invalid facility id")
		}
		return id, nil
	}

	if sport := c.Query("sport"); sport != "" {
		f, err := h.facService.ResolveSport(c.Request.Context(), sport)
		if err != nil {
			return 0, err
		}
		return f.ID, nil
	}

	return defaultFacilityID, nil
}
