// Command initdb creates the schema and seeds the default admin account.
package main

import (
	"context"
	"log"
	"time"

	"github.com/georgemunganga/mostrador/internal/config"
	"github.com/georgemunganga/mostrador/internal/database"
	"github.com/georgemunganga/mostrador/internal/modules/user"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, reading configuration from the environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.Open(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	hash, err := user.HashPassword(cfg.AdminPassword)
	if err != nil {
		log.Fatal(err)
	}
	seeded, err := database.Bootstrap(ctx, db, hash)
	if err != nil {
		log.Fatal(err)
	}

	if seeded {
		log.Println("schema ready, admin account created")
	} else {
		log.Println("schema ready, admin account already present")
	}
}
