package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/georgemunganga/mostrador/internal/config"
	"github.com/georgemunganga/mostrador/internal/database"
	"github.com/georgemunganga/mostrador/internal/session"
	"github.com/georgemunganga/mostrador/internal/view"
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

	db, err := database.Open(context.Background(), cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()
	log.Println("Successfully connected to the database!")

	views, err := view.NewTemplates()
	if err != nil {
		log.Fatal(err)
	}
	sessions := session.NewManager(cfg.SecretKey, cfg.SessionTTL, cfg.SecureCookies)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newRouter(db, views, sessions),
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Printf("Mostrador server starting on :%s", cfg.Port)
	log.Fatal(srv.ListenAndServe())
}
