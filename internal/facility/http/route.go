package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	g.GET("/facilities", authMiddleware, h.List)
	g.GET("/sports", authMiddleware, h.Sports)
}
