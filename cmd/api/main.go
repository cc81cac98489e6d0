package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"photosite/internal/config"
	"photosite/internal/database"
	"photosite/internal/middleware"
	"photosite/internal/modules/admin"
	"photosite/internal/modules/admin/feed"
	"photosite/internal/modules/booking"
	"photosite/internal/modules/consultation"
	"photosite/internal/modules/gallery"
	jwtsvc "photosite/internal/pkg/jwt"
	"photosite/internal/pkg/logger"
	"photosite/internal/provider/gcal"
	"photosite/internal/provider/mail"
	"photosite/internal/provider/zoom"
	"photosite/internal/repository"
	"photosite/internal/schedule"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config: ", err)
	}

	zlog := logger.New(cfg.AppEnv)
	defer zlog.Sync()

	db, err := database.Connect(cfg.DSN)
	if err != nil {
		zlog.Fatal("database connection failed", zap.Error(err))
	}
	if err := repository.AutoMigrate(db); err != nil {
		zlog.Fatal("migration failed", zap.Error(err))
	}

	bookingRepo := repository.NewBookingRepository(db)
	windowRepo := repository.NewWindowRepository(db)
	consultationRepo := repository.NewConsultationRepository(db)
	collectionRepo := repository.NewCollectionRepository(db)
	adminRepo := repository.NewAdminUserRepository(db)

	jwtService := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	zoomClient := zoom.NewClient(zoom.Config{
		AccountID:    cfg.Zoom.AccountID,
		ClientID:     cfg.Zoom.ClientID,
		ClientSecret: cfg.Zoom.ClientSecret,
	}, zlog)
	calendarClient := gcal.NewClient(gcal.Config{
		ClientEmail: cfg.Google.ClientEmail,
		PrivateKey:  cfg.Google.PrivateKey,
		CalendarID:  cfg.Google.CalendarID,
	}, zlog)

	var mailer mail.Sender
	if cfg.SMTP.Host != "" {
		mailer = mail.NewSMTPSender(mail.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		})
	} else {
		mailer = mail.NewLogSender(zlog)
	}

	hub := feed.NewHub()
	loc := cfg.Location()
	policy := schedule.DefaultPolicy(loc)

	orch := booking.NewOrchestrator(bookingRepo, zoomClient, calendarClient, mailer, hub, zlog, booking.OrchestratorConfig{
		PhotographerEmail: cfg.PhotographerEmail,
		PhotographerName:  cfg.PhotographerName,
		Location:          loc,
	})
	bookingService := booking.NewService(bookingRepo, windowRepo, orch, policy)
	bookingHandler := booking.NewHandler(bookingService)

	consultationService := consultation.NewService(consultationRepo, mailer, hub, zlog, cfg.PhotographerEmail)
	consultationHandler := consultation.NewHandler(consultationService)

	galleryService := gallery.NewService(collectionRepo)
	galleryHandler := gallery.NewHandler(galleryService)

	authService := admin.NewAuthService(adminRepo, jwtService, zlog)
	windowService := admin.NewWindowService(windowRepo)
	adminHandler := admin.NewHandler(authService, windowService, bookingService, consultationService, hub, zlog)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(zlog))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	v1 := r.Group("/api/v1")
	{
		bookingHandler.RegisterRoutes(v1)
		consultationHandler.RegisterRoutes(v1)
		galleryHandler.RegisterRoutes(v1)

		adminGroup := v1.Group("/admin")
		adminHandler.RegisterPublicRoutes(adminGroup)

		protected := adminGroup.Group("")
		protected.Use(middleware.JWTAuth(jwtService))
		{
			adminHandler.RegisterRoutes(protected)
			consultationHandler.RegisterAdminRoutes(protected)
			galleryHandler.RegisterAdminRoutes(protected)
		}
	}

	zlog.Info("starting api",
		zap.String("port", cfg.Port),
		zap.String("timezone", loc.String()),
		zap.Bool("zoom_configured", zoomClient.Configured()),
		zap.Bool("calendar_configured", calendarClient.Configured()))

	if err := r.Run(":" + cfg.Port); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
