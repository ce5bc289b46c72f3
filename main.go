package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/dseu-petition/petition-api/internal/config"
	"github.com/dseu-petition/petition-api/internal/db"
	"github.com/dseu-petition/petition-api/internal/gelf"
	"github.com/dseu-petition/petition-api/internal/handler"
	"github.com/dseu-petition/petition-api/internal/pdf"
	"github.com/dseu-petition/petition-api/internal/repository"
	"github.com/dseu-petition/petition-api/internal/router"
	"github.com/dseu-petition/petition-api/internal/service"
	"github.com/dseu-petition/petition-api/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
	cfg := config.Load()

	// GELF UDP logging
	if cfg.GelfAddr != "" {
		gelfWriter, err := gelf.New(cfg.GelfAddr)
		if err != nil {
			log.Printf("Warning: GELF init failed: %v", err)
		} else {
			log.SetOutput(io.MultiWriter(os.Stderr, gelfWriter))
			log.Printf("GELF logging: enabled (%s)", cfg.GelfAddr)
		}
	}

	// Database
	gdb, err := db.Connect(cfg.DatabaseDSN, cfg.DBMaxConns)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Printf("Connected to Postgres (max conns: %d)", cfg.DBMaxConns)

	// Document storage
	store, err := storage.NewDiskStore(cfg.StorageDir, cfg.PublicBase)
	if err != nil {
		log.Fatalf("Failed to init storage: %v", err)
	}

	// Repositories
	petitionRepo := repository.NewPetitionRepo(gdb)
	profileRepo := repository.NewProfileRepo(gdb)

	// Services
	authSvc := service.NewAuthService(profileRepo, cfg.JWTSecret)
	petitionSvc := service.NewPetitionService(petitionRepo, store)
	statsSvc := service.NewStatsService(petitionRepo, profileRepo)
	renderer := pdf.NewRenderer(pdf.NewHTTPLoader())

	// Handlers
	authH := handler.NewAuthHandler(authSvc)
	petH := handler.NewPetitionHandler(petitionSvc, renderer)
	dashH := handler.NewDashboardHandler(statsSvc)
	adminH := handler.NewAdminHandler(petitionSvc, statsSvc, renderer)

	// Seed admin account
	if err := authSvc.SeedAdmin(context.Background(), cfg.AdminEmail, cfg.AdminPass); err != nil {
		log.Printf("Warning: failed to seed admin: %v", err)
	}

	r := router.New(cfg.JWTSecret, store.FileSystem(), authH, petH, dashH, adminH)

	log.Printf("Petition server starting on %s", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
