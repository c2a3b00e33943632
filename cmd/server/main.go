package main

import (
	"log"
	"net/http"
	"os"

	_ "parklot/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"parklot/internal/auth"
	"parklot/internal/cache"
	"parklot/internal/config"
	"parklot/internal/db"
	"parklot/internal/handler"
	"parklot/internal/model"
	"parklot/internal/repository"
	"parklot/internal/router"
	"parklot/internal/service"
)

// @title Parking Lot API
// @version 1.0
// @description Parking lot management API with accounts, vehicle registry and entry/exit logging with hourly fees.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	defer func() {
		if err := db.Close(gormDB); err != nil {
			log.Printf("close database: %v", err)
		}
	}()

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.ParkingSession{},
			&model.Vehicle{},
			&model.Account{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.Account{},
		&model.Vehicle{},
		&model.ParkingSession{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()

	// Initialize repositories
	accountRepo := repository.NewAccountRepository(gormDB)
	vehicleRepo := repository.NewVehicleRepository(gormDB)
	sessionRepo := repository.NewParkingSessionRepository(gormDB)

	// Initialize auth components
	tokenService := auth.NewTokenService(cfg.SessionSecret, cfg.SessionTTL)
	sessionStore := auth.NewSessionStore(cacheClient)

	// Initialize services
	accountService := service.NewAccountService(accountRepo, cacheClient)
	vehicleService := service.NewVehicleService(vehicleRepo, accountRepo)
	parkingService := service.NewParkingService(sessionRepo, cfg.HourlyRate)
	authService := service.NewAuthService(accountService, accountRepo, tokenService, sessionStore)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, cfg.SessionTTL)
	accountHandler := handler.NewAccountHandler(accountService)
	vehicleHandler := handler.NewVehicleHandler(vehicleService)
	parkingHandler := handler.NewParkingHandler(parkingService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		accountHandler,
		vehicleHandler,
		parkingHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
