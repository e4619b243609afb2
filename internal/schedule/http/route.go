package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	g.GET("/slots", authMiddleware, h.ListOpen)

	// Availability is readable without a session, matching the public
	// calendar API of the frontend.
	g.GET("/availability", h.BookedCells)
}
