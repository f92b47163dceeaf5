package main

import (
	"context"
	"log"

	"wittycar/internal/auth"
	"wittycar/internal/config"
	"wittycar/internal/db"
	"wittycar/internal/identity"
	"wittycar/internal/model"
	"wittycar/internal/repository"
	"wittycar/internal/service"
)

// Seeds a demo user with two vehicles and a service record for local
// development. Safe to re-run: a second run fails on the duplicate email and
// leaves existing data untouched.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&identity.Account{},
		&model.User{},
		&model.Vehicle{},
		&model.ServiceRecord{},
		&model.Appointment{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	provider := identity.NewGormProvider(gormDB)
	userRepo := repository.NewUserRepository(gormDB)
	vehicleRepo := repository.NewVehicleRepository(gormDB)
	serviceRecordRepo := repository.NewServiceRecordRepository(gormDB)

	authService := service.NewAuthService(provider, userRepo, auth.NewJWTService(cfg.JWTSecret), nil)
	vehicleService := service.NewVehicleService(vehicleRepo, nil)
	serviceRecordService := service.NewServiceRecordService(serviceRecordRepo, vehicleRepo)

	ctx := context.Background()

	result, err := authService.Register(ctx, service.RegisterInput{
		Email:       "demo@wittycar.dev",
		Password:    "demo-password",
		DisplayName: "Demo User",
	})
	if err != nil {
		log.Fatalf("Failed to register demo user: %v", err)
	}
	log.Printf("Created demo user %s", result.User.UID)

	vehicles := []service.VehicleInput{
		{Plate: "ab-123", Brand: "Toyota", Model: "Corolla", Year: 2020, Mileage: 42000},
		{Plate: "cd-456", Brand: "Volkswagen", Model: "Golf", Year: 2018, Mileage: 87500},
	}
	for _, in := range vehicles {
		vehicle, err := vehicleService.CreateVehicle(ctx, result.User.UID, in)
		if err != nil {
			log.Fatalf("Failed to create vehicle %s: %v", in.Plate, err)
		}
		log.Printf("Created vehicle %s (%s)", vehicle.ID, vehicle.Plate)

		if _, err := serviceRecordService.CreateRecord(ctx, vehicle.ID, result.User.UID, service.ServiceRecordInput{
			Title:       "Oil change",
			Description: "Engine oil and filter replaced",
			Date:        "2025-06-15T10:00:00Z",
			Mileage:     vehicle.Mileage - 500,
		}); err != nil {
			log.Fatalf("Failed to create service record for %s: %v", vehicle.Plate, err)
		}
	}

	log.Println("Seed completed")
}
