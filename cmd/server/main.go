package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"wittycar/internal/auth"
	"wittycar/internal/cache"
	"wittycar/internal/config"
	"wittycar/internal/db"
	"wittycar/internal/handler"
	"wittycar/internal/identity"
	"wittycar/internal/model"
	"wittycar/internal/repository"
	"wittycar/internal/router"
	"wittycar/internal/service"
)

// @title WittyCar API
// @version 1.0
// @description Vehicle maintenance tracking API: vehicles, service history, and appointment booking with JWT authentication.
// @BasePath /api/v1
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
		&identity.Account{},
		&model.User{},
		&model.Vehicle{},
		&model.ServiceRecord{},
		&model.Appointment{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories and the identity gateway
	userRepo := repository.NewUserRepository(gormDB)
	vehicleRepo := repository.NewVehicleRepository(gormDB)
	serviceRecordRepo := repository.NewServiceRecordRepository(gormDB)
	appointmentRepo := repository.NewAppointmentRepository(gormDB)
	provider := identity.NewGormProvider(gormDB)

	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(provider, userRepo, jwtService, cacheClient)
	vehicleService := service.NewVehicleService(vehicleRepo, cacheClient)
	serviceRecordService := service.NewServiceRecordService(serviceRecordRepo, vehicleRepo)
	appointmentService := service.NewAppointmentService(appointmentRepo, vehicleRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	vehicleHandler := handler.NewVehicleHandler(vehicleService)
	serviceRecordHandler := handler.NewServiceRecordHandler(serviceRecordService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)

	// Register routes
	router.Register(
		e,
		jwtService,
		authHandler,
		vehicleHandler,
		serviceRecordHandler,
		appointmentHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
