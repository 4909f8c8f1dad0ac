package main

import (
	"context"
	"os"
	"strings"

	"github.com/joho/godotenv"

	authsvc "github.com/pebworks/steelquote-backend/internal/auth"
	product "github.com/pebworks/steelquote-backend/internal/products"
	"github.com/pebworks/steelquote-backend/pkg/config"
	"github.com/pebworks/steelquote-backend/pkg/db"
	"github.com/pebworks/steelquote-backend/pkg/db/models"
	"github.com/pebworks/steelquote-backend/pkg/enums"
	"github.com/pebworks/steelquote-backend/pkg/logger"
	"github.com/pebworks/steelquote-backend/pkg/migrate"
	"github.com/pebworks/steelquote-backend/pkg/security"
)

// Seeds the product catalog and, when STEELQUOTE_SEED_ADMIN_EMAIL and
// STEELQUOTE_SEED_ADMIN_PASSWORD are set, a first admin account.
func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "seed"})

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	if err := migrate.MaybeRunDev(ctx, cfg, logg, dbClient); err != nil {
		logg.Error(ctx, "failed to run dev migrations", err)
		os.Exit(1)
	}

	repo := product.NewRepository(dbClient.DB())
	if err := product.SeedDefaults(ctx, repo); err != nil {
		logg.Error(ctx, "failed to seed product catalog", err)
		os.Exit(1)
	}
	logg.Info(ctx, "product catalog seeded")

	email := strings.TrimSpace(os.Getenv("STEELQUOTE_SEED_ADMIN_EMAIL"))
	password := os.Getenv("STEELQUOTE_SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	users := authsvc.NewRepository(dbClient.DB())
	existing, err := users.FindByEmail(ctx, email)
	if err != nil {
		logg.Error(ctx, "failed to check admin account", err)
		os.Exit(1)
	}
	if existing != nil {
		logg.Info(logg.WithField(ctx, "email", email), "admin account already exists")
		return
	}

	hash, err := security.HashPassword(password, cfg.Password)
	if err != nil {
		logg.Error(ctx, "failed to hash admin password", err)
		os.Exit(1)
	}

	admin := &models.User{
		Email:        strings.ToLower(email),
		PasswordHash: hash,
		FirstName:    "Admin",
		LastName:     "User",
		Role:         enums.MemberRoleAdmin,
		IsActive:     true,
	}
	if err := users.Create(ctx, admin); err != nil {
		logg.Error(ctx, "failed to create admin account", err)
		os.Exit(1)
	}
	logg.Info(logg.WithField(ctx, "email", admin.Email), "admin account created")
}
