package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"hotelreserve/internal/config"
	"hotelreserve/internal/database"
	"hotelreserve/internal/middleware"
	"hotelreserve/internal/modules/auth"
	"hotelreserve/internal/modules/billing"
	"hotelreserve/internal/modules/catalog"
	"hotelreserve/internal/modules/events"
	"hotelreserve/internal/modules/reporting"
	"hotelreserve/internal/modules/reservation"
	"hotelreserve/internal/modules/tariff"
	jwtsvc "hotelreserve/internal/pkg/jwt"
	"hotelreserve/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "hotelreserve.db"
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	roomRepo := repository.NewRoomRepository(db)
	guestRepo := repository.NewGuestRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	staffRepo := repository.NewStaffRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	hub := events.NewHub()
	defer hub.Close()

	calc := tariff.NewCalculator(cfg)
	engine := billing.NewEngine(calc, cfg)

	authService := auth.NewService(staffRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(roomRepo, guestRepo, bookingRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	reservationService := reservation.NewService(bookingRepo, roomRepo, guestRepo, engine, hub)
	reservationHandler := reservation.NewHandler(reservationService)

	reportingService := reporting.NewService(roomRepo, bookingRepo, engine)
	reportingHandler := reporting.NewHandler(reportingService)

	eventsHandler := events.NewHandler(hub, j)

	r := gin.Default()
	r.Use(middleware.CORS(), middleware.ErrorLogger())

	eventsHandler.RegisterRoutes(r)

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)

		// protected (desk operations)
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			catalogHandler.RegisterRoutes(protected)
			reservationHandler.RegisterRoutes(protected)
			reportingHandler.RegisterRoutes(protected)

			managers := protected.Group("/")
			managers.Use(middleware.ManagerOnly())
			{
				authHandler.RegisterProtectedRoutes(managers)
			}
		}
	}

	addr := ":" + getEnv("PORT", "8080")
	log.Printf("%s listening on %s", cfg.HotelName, addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
