package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusrec/facility-booking-backend/internal/facility"
	"github.com/campusrec/facility-booking-backend/internal/pkg/response"
)

type Handler struct {
	service facility.Service
}

func NewHandler(service facility.Service) *Handler {
	return &Handler{service: service}
}

// List returns the facility catalog, optionally filtered by sport.
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		facilities []*facility.Facility
		err        error
	)

	if sport := c.Query("sport"); sport != "" {
		facilities, err = h.service.ListBySport(ctx, sport)
	} else {
		facilities, err = h.service.List(ctx)
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]FacilityResponse, len(facilities))
	for i, f := range facilities {
		items[i] = NewFacilityResponse(f)
	}

	c.JSON(http.StatusOK, items)
}

// Sports returns distinct sports with their facility counts.
func (h *Handler) Sports(c *gin.Context) {
	sports, err := h.service.Sports(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]SportResponse, len(sports))
	for i, sc := range sports {
		items[i] = SportResponse{Sport: sc.Sport, FacilityCount: sc.FacilityCount}
	}

	c.JSON(http.StatusOK, items)
}
