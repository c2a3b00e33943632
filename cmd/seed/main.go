package main

import (
	"context"
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"parklot/internal/config"
	"parklot/internal/db"
	"parklot/internal/model"
	"parklot/internal/repository"
)

type seedAccount struct {
	Name     string
	Email    string
	Password string
	Vehicles []model.Vehicle
}

var demoAccounts = []seedAccount{
	{
		Name:     "Maria Silva",
		Email:    "maria@example.com",
		Password: "senha123",
		Vehicles: []model.Vehicle{
			{Plate: "ABC1D23", Model: "Fiat Argo", Color: "prata"},
			{Plate: "XYZ9A87", Model: "VW Gol", Color: "preto"},
		},
	},
	{
		Name:     "Joao Souza",
		Email:    "joao@example.com",
		Password: "senha123",
		Vehicles: []model.Vehicle{
			{Plate: "DEF4G56", Model: "Chevrolet Onix", Color: "branco"},
		},
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.Account{}, &model.Vehicle{}, &model.ParkingSession{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	accountRepo := repository.NewAccountRepository(gormDB)
	vehicleRepo := repository.NewVehicleRepository(gormDB)
	ctx := context.Background()

	created, skipped := 0, 0
	for _, seed := range demoAccounts {
		if _, err := accountRepo.FindByEmail(ctx, seed.Email); err == nil {
			log.Printf("Account %s already exists, skipping", seed.Email)
			skipped++
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Failed to check account %s: %v", seed.Email, err)
		}

		passwordHash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), 10)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}

		account := &model.Account{
			Name:         seed.Name,
			Email:        seed.Email,
			PasswordHash: string(passwordHash),
		}
		if err := accountRepo.Create(ctx, account); err != nil {
			log.Fatalf("Failed to create account %s: %v", seed.Email, err)
		}
		created++

		for _, vehicle := range seed.Vehicles {
			vehicle.AccountID = &account.ID
			if err := vehicleRepo.Create(ctx, &vehicle); err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					log.Printf("Vehicle %s already exists, skipping", vehicle.Plate)
					continue
				}
				log.Fatalf("Failed to create vehicle %s: %v", vehicle.Plate, err)
			}
		}
	}

	log.Printf("Seed completed: %d accounts created, %d skipped", created, skipped)
}
