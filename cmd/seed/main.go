// Seed loads a small set of sample data: five destinations, a demo user and
// one planned trip. Safe to run repeatedly; existing rows are left alone.
package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"tripplanner/internal/config"
	"tripplanner/internal/model"
	"tripplanner/internal/repository"
	"tripplanner/pkg/db"
	"tripplanner/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	cfg := config.Load()

	logger := logger.NewLogger()
	defer logger.Sync()

	dbConn, err := db.NewConnection(cfg.DB, logger)
	if err != nil {
		logger.Fatal("DB initialization failed", zap.Error(err))
	}
	defer dbConn.Close()

	ctx := context.Background()

	if err := db.ApplyMigrations(ctx, dbConn, "migrations", logger); err != nil {
		logger.Fatal("Migrations failed", zap.Error(err))
	}

	destinationRepo := repository.NewDestinationRepository(dbConn, logger)
	userRepo := repository.NewUserRepository(dbConn, logger)
	tripRepo := repository.NewTripRepository(dbConn, logger)

	destinations := []model.Destination{
		{Name: "Paris", Country: "France", Description: "City of Light"},
		{Name: "Tokyo", Country: "Japan", Description: "Modern metropolis"},
		{Name: "New York", Country: "USA", Description: "The Big Apple"},
		{Name: "London", Country: "UK", Description: "Historic capital"},
		{Name: "Bali", Country: "Indonesia", Description: "Tropical paradise"},
	}

	byName := map[string]int64{}
	existing, err := destinationRepo.List(ctx)
	if err != nil {
		logger.Fatal("Failed to list destinations", zap.Error(err))
	}
	for _, d := range existing {
		byName[d.Name] = d.ID
	}

	for _, d := range destinations {
		if _, ok := byName[d.Name]; ok {
			continue
		}
		if err := destinationRepo.Create(ctx, &d); err != nil {
			logger.Fatal("Failed to create destination", zap.Error(err), zap.String("name", d.Name))
		}
		byName[d.Name] = d.ID
		logger.Info("Created destination", zap.String("name", d.Name))
	}

	user, err := userRepo.GetByUsername(ctx, "demo_user")
	if errors.Is(err, repository.ErrNotFound) {
		user = &model.User{
			Username:  "demo_user",
			Email:     "demo@example.com",
			FirstName: "Demo",
			LastName:  "User",
		}
		if err := userRepo.Create(ctx, user); err != nil {
			logger.Fatal("Failed to create demo user", zap.Error(err))
		}
		logger.Info("Created demo user")
	} else if err != nil {
		logger.Fatal("Failed to look up demo user", zap.Error(err))
	}

	trips, err := tripRepo.ListByUser(ctx, user.ID)
	if err != nil {
		logger.Fatal("Failed to list trips", zap.Error(err))
	}
	hasParisTrip := false
	for _, t := range trips {
		if t.Title == "Paris Adventure" && t.DestinationID == byName["Paris"] {
			hasParisTrip = true
			break
		}
	}

	if !hasParisTrip {
		today := time.Now()
		trip := model.Trip{
			UserID:        user.ID,
			DestinationID: byName["Paris"],
			Title:         "Paris Adventure",
			StartDate:     model.DateOf(today.AddDate(0, 0, 30)),
			EndDate:       model.DateOf(today.AddDate(0, 0, 37)),
			Budget:        decimal.RequireFromString("2500.00"),
			Status:        model.StatusPlanned,
		}
		if err := tripRepo.Create(ctx, &trip); err != nil {
			logger.Fatal("Failed to create sample trip", zap.Error(err))
		}
		logger.Info("Created sample trip")
	}

	logger.Info("Successfully populated sample data")
}
