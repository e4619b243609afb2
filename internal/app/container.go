package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusrec/facility-booking-backend/internal/api"
	"github.com/campusrec/facility-booking-backend/internal/auth"
	"github.com/campusrec/facility-booking-backend/internal/booking"
	"github.com/campusrec/facility-booking-backend/internal/facility"
	"github.com/campusrec/facility-booking-backend/internal/schedule"
	"github.com/campusrec/facility-booking-backend/internal/user"
)

// Config holds the dependencies and settings required to start the
// application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	JWTSecret    string
	JWTTTL       time.Duration
	BcryptCost   int
}

// Container holds the initialized components needed externally.
type Container struct {
	Router          *gin.Engine
	JWTManager      *auth.JWTManager
	ScheduleService schedule.Service
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	// Account module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Catalog module
	facilityRepo := facility.NewPgxRepository(cfg.DBPool)
	facilityService := facility.NewService(facilityRepo)

	// Slot grid module
	scheduleRepo := schedule.NewPgxRepository(cfg.DBPool)
	scheduleService := schedule.NewService(scheduleRepo)

	// Reservation module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, facilityService)

	router := api.NewRouter(api.Config{
		IsProduction:    cfg.IsProduction,
		ProdOrigins:     cfg.ProdOrigins,
		UserService:     userService,
		FacilityService: facilityService,
		ScheduleService: scheduleService,
		BookingService:  bookingService,
		JWTManager:      jwtManager,
	})

	return &Container{
		Router:          router,
		JWTManager:      jwtManager,
		ScheduleService: scheduleService,
	}
}
