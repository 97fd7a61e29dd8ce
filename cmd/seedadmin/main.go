// Command seedadmin bootstraps the first administrator account. It is
// idempotent: if any admin already exists nothing is written.
package main

import (
	"context"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/caresync/clinic-system/internal/core/domain"
	"github.com/caresync/clinic-system/internal/infrastructure/config"
	mongodb "github.com/caresync/clinic-system/internal/infrastructure/db/mongo"
	"github.com/caresync/clinic-system/pkg/logger"
)

const (
	adminEmail    = "admin@clinic.local"
	adminPassword = "Admin@123"
)

func main() {
	ctx := context.Background()
	log := logger.Init(logger.Options{Output: os.Stderr, Pretty: true})

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	users := mongodb.NewUserRepository(db)

	existing, err := users.FindByRole(ctx, domain.RoleAdmin)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to look up admin accounts")
	}
	if len(existing) > 0 {
		log.Info().Str("email", existing[0].Email).Msg("admin user already exists")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash admin password")
	}

	created, err := users.Create(ctx, &domain.User{
		Email:        adminEmail,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		Status:       domain.StatusActive,
		Name:         "Super Admin",
		Phone:        "9999999999",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create admin user")
	}

	log.Info().Str("email", created.Email).Msg("admin user created")
}
