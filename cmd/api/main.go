package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"trainmydog/internal/config"
	"trainmydog/internal/database"
	"trainmydog/internal/middleware"
	"trainmydog/internal/modules/application"
	"trainmydog/internal/modules/auth"
	"trainmydog/internal/modules/booking"
	"trainmydog/internal/modules/catalog"
	"trainmydog/internal/modules/notification"
	"trainmydog/internal/modules/upload"
	jwtsvc "trainmydog/internal/pkg/jwt"
	"trainmydog/internal/repository"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	files := upload.NewService(cfg.UploadsDir, cfg.StaticBase)

	notificationService := notification.NewService(notificationRepo)
	notificationHandler := notification.NewHandler(notificationService)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(courseRepo)
	catalogHandler := catalog.NewHandler(catalogService, files)

	bookingService := booking.NewService(bookingRepo, courseRepo, userRepo, notificationService)
	bookingHandler := booking.NewHandler(bookingService)

	applicationService := application.NewService(applicationRepo, userRepo, notificationService, true)
	applicationHandler := application.NewHandler(applicationService, files)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	r.Static("/static/uploads", cfg.UploadsDir)

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		catalogHandler.RegisterPublicRoutes(v1)

		// any authenticated user
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			bookingHandler.RegisterRoutes(protected)
			applicationHandler.RegisterRoutes(protected)
			notificationHandler.RegisterRoutes(protected)
		}

		// trainer-gated
		trainer := v1.Group("/")
		trainer.Use(middleware.JWTAuth(j), middleware.TrainerOnly())
		{
			catalogHandler.RegisterTrainerRoutes(trainer)
			bookingHandler.RegisterTrainerRoutes(trainer)
		}

		// admin-gated
		admin := v1.Group("/")
		admin.Use(middleware.JWTAuth(j), middleware.AdminOnly())
		{
			applicationHandler.RegisterAdminRoutes(admin)
		}
	}

	log.Printf("listening on %s", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
