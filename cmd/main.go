package main

import (
	"context"
	"log"

	"github.com/RadhepS/E-Commerce-Platform/config"
	"github.com/RadhepS/E-Commerce-Platform/db"
	"github.com/RadhepS/E-Commerce-Platform/internal/auth/handler"
	repo "github.com/RadhepS/E-Commerce-Platform/internal/auth/repository/postgres"
	"github.com/RadhepS/E-Commerce-Platform/internal/auth/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	if err := db.RunMigrations(ctx, cfg.DBURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	userRepo := repo.NewPostgresRepository(dbPool)
	tokenService := service.NewTokenService(cfg.TokenSecret, cfg.TokenExpiryMin)
	hasher := service.NewBcryptHasher(cfg.BcryptCost)
	gate := service.NewSessionGate(tokenService, userRepo)
	userService := service.NewUserService(userRepo, tokenService, hasher, gate)
	authHandler := handler.NewAuthHandler(userService, cfg.CookieSecure)

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	// Resolve the caller once per request so the catalog and order handlers
	// can read it from locals instead of re-verifying the cookie.
	app.Use(handler.CurrentUser(gate))

	handler.RegisterRoutes(app, authHandler)

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
