// cmd/seed/main.go creates the demo accounts: one superuser admin and
// one driver. Safe to run repeatedly; existing accounts are left alone.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	ent "github.com/omerfdemir/pickuptracker/ent/generated"
	"github.com/omerfdemir/pickuptracker/ent/generated/user"
	"github.com/omerfdemir/pickuptracker/pkg/auth"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_NAME", "pickuptracker"),
		getEnv("DB_SSL_MODE", "disable"),
	)

	drv, err := sql.Open(dialect.Postgres, dsn)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer drv.Close()

	client := ent.NewClient(ent.Driver(drv))
	defer client.Close()

	ctx := context.Background()
	passwordManager := auth.NewPasswordManager()

	seedUser(ctx, client, passwordManager, "admin", getEnv("SEED_ADMIN_PASSWORD", "AdminPass123"), user.RoleAdmin, true)
	seedUser(ctx, client, passwordManager, "driver", getEnv("SEED_DRIVER_PASSWORD", "DriverPass123"), user.RoleDriver, false)

	log.Println("Seed completed")
}

func seedUser(ctx context.Context, client *ent.Client, pm *auth.PasswordManager, username, password string, role user.Role, superuser bool) {
	exists, err := client.User.Query().
		Where(user.UsernameEQ(username)).
		Exist(ctx)
	if err != nil {
		log.Fatalf("Failed to check user %s: %v", username, err)
	}
	if exists {
		log.Printf("User %s already exists, skipping", username)
		return
	}

	hash, err := pm.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password for %s: %v", username, err)
	}

	if _, err := client.User.Create().
		SetUsername(username).
		SetPasswordHash(hash).
		SetRole(role).
		SetIsSuperuser(superuser).
		Save(ctx); err != nil {
		log.Fatalf("Failed to create user %s: %v", username, err)
	}

	log.Printf("Created %s account %q", role, username)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
