package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/campusrec/facility-booking-backend/internal/auth"
	"github.com/campusrec/facility-booking-backend/internal/booking"
	bookingHttp "github.com/campusrec/facility-booking-backend/internal/booking/http"
	"github.com/campusrec/facility-booking-backend/internal/facility"
	facilityHttp "github.com/campusrec/facility-booking-backend/internal/facility/http"
	"github.com/campusrec/facility-booking-backend/internal/schedule"
	scheduleHttp "github.com/campusrec/facility-booking-backend/internal/schedule/http"
	"github.com/campusrec/facility-booking-backend/internal/user"
)

// Config carries the services and settings the router needs.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	UserService     user.Service
	FacilityService facility.Service
	ScheduleService schedule.Service
	BookingService  booking.Service

	JWTManager *auth.JWTManager
}

// NewRouter initializes the HTTP router engine: middleware (CORS, logger,
// recovery) plus the route registrations of every module.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:3000", "http://localhost:8081"}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	authMiddleware := auth.AuthRequired(cfg.JWTManager)

	authHandler := NewAuthHandler(cfg.UserService, cfg.JWTManager)
	facilityHandler := facilityHttp.NewHandler(cfg.FacilityService)
	scheduleHandler := scheduleHttp.NewHandler(cfg.ScheduleService, cfg.FacilityService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)

	v1 := r.Group("/v1")
	{
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/logout", authMiddleware, authHandler.Logout)
		}
		v1.GET("/me", authMiddleware, authHandler.Me)

		facilityHttp.RegisterRoutes(v1, facilityHandler, authMiddleware)
		scheduleHttp.RegisterRoutes(v1, scheduleHandler, authMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware)
	}

	return r
}
