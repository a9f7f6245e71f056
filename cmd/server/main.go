package main

import (
	"log"
	"net/http"

	_ "github.com/Kirojava/Arsenic/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Kirojava/Arsenic/internal/auth"
	"github.com/Kirojava/Arsenic/internal/cache"
	"github.com/Kirojava/Arsenic/internal/config"
	"github.com/Kirojava/Arsenic/internal/db"
	"github.com/Kirojava/Arsenic/internal/handler"
	"github.com/Kirojava/Arsenic/internal/model"
	"github.com/Kirojava/Arsenic/internal/repository"
	"github.com/Kirojava/Arsenic/internal/router"
	"github.com/Kirojava/Arsenic/internal/service"
)

// @title Arsenic Summit API
// @version 1.0
// @description Conference backend for the Arsenic Summit MUN: delegate registration, check-in verification, and site content.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Committee{},
		&model.Registration{},
		&model.TeamMember{},
		&model.Event{},
		&model.GalleryImage{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	committeeRepo := repository.NewCommitteeRepository(gormDB)
	registrationRepo := repository.NewRegistrationRepository(gormDB)
	teamRepo := repository.NewTeamMemberRepository(gormDB)
	eventRepo := repository.NewEventRepository(gormDB)
	galleryRepo := repository.NewGalleryRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	userService := service.NewUserService(userRepo, cacheClient)
	committeeService := service.NewCommitteeService(committeeRepo, cacheClient)
	contentService := service.NewContentService(teamRepo, eventRepo, galleryRepo)
	registrationService := service.NewRegistrationService(
		registrationRepo,
		userRepo,
		service.NewCodeGenerator(),
		cacheClient,
		cfg.DelegateFee,
	)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	committeeHandler := handler.NewCommitteeHandler(committeeService)
	contentHandler := handler.NewContentHandler(contentService)
	registrationHandler := handler.NewRegistrationHandler(registrationService)

	// Register routes
	router.Register(
		e,
		cfg,
		cacheClient,
		authHandler,
		userHandler,
		committeeHandler,
		contentHandler,
		registrationHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
