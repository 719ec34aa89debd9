package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"tripplanner/internal/api"
	"tripplanner/internal/config"
	"tripplanner/internal/repository"
	"tripplanner/internal/service"
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

	if err := db.ApplyMigrations(context.Background(), dbConn, "migrations", logger); err != nil {
		logger.Fatal("Migrations failed", zap.Error(err))
	}

	// Repositories
	userRepo := repository.NewUserRepository(dbConn, logger)
	destinationRepo := repository.NewDestinationRepository(dbConn, logger)
	tripRepo := repository.NewTripRepository(dbConn, logger)
	activityRepo := repository.NewActivityRepository(dbConn, logger)
	expenseRepo := repository.NewExpenseRepository(dbConn, logger)

	// Services
	tripService := service.NewTripService(tripRepo, destinationRepo, activityRepo, expenseRepo)
	userService := service.NewUserService(userRepo)

	// Handlers
	destinationHandler := api.NewDestinationHandler(destinationRepo, logger)
	tripHandler := api.NewTripHandler(tripService, tripRepo, destinationRepo, userRepo, logger)
	activityHandler := api.NewActivityHandler(activityRepo, tripRepo, logger)
	expenseHandler := api.NewExpenseHandler(expenseRepo, tripRepo, logger)
	userHandler := api.NewUserHandler(userService, logger)

	// Router
	router := api.NewRouter(destinationHandler, tripHandler, activityHandler, expenseHandler, userHandler)

	logger.Info("Starting trip planner server", zap.String("port", cfg.Server.Port))
	if err := router.Run(cfg.Server.Port); err != nil {
		log.Fatalf("server start failed: %v", err)
	}
}
