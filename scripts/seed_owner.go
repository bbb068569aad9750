package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/sharafhazem/portfolio-ops/internal/domain/user"
	"github.com/sharafhazem/portfolio-ops/pkg/auth"
)

func main() {
	fmt.Println("adding owner into database...")

	err := godotenv.Load()
	if err != nil {
		log.Println("warning: .env file not found, use system environment variables.")
	}

	DSN := os.Getenv("DB_DSN")
	ADMIN_USERNAME := os.Getenv("ADMIN_USERNAME")
	ADMIN_PASSWORD := os.Getenv("ADMIN_PASSWORD")

	if ADMIN_USERNAME == "" || ADMIN_PASSWORD == "" {
		log.Fatal("ADMIN_USERNAME and ADMIN_PASSWORD must be set")
	}

	hash, err := auth.HashPassword(ADMIN_PASSWORD)
	if err != nil {
		log.Fatalf("cannot hash password: %v", err)
	}

	pool, err := pgxpool.New(context.Background(), DSN)
	if err != nil {
		log.Fatalf("cannot connect DB: %v", err)
	}
	defer pool.Close()

	query := `
		INSERT INTO users (id, username, password_hash, role)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (username) DO UPDATE SET password_hash = $3, role = $4
	`
	_, err = pool.Exec(context.Background(), query, uuid.New(), ADMIN_USERNAME, hash, user.RoleAdmin)
	if err != nil {
		log.Fatalf("cannot add user: %v", err)
	}

	fmt.Printf("added or updated owner '%s' successfully!\n", ADMIN_USERNAME)
}
