package main

import (
	"MedicareClinic/cache"
	"MedicareClinic/config"
	"MedicareClinic/database"
	"MedicareClinic/models"
	"MedicareClinic/routes"
	"MedicareClinic/utils"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func main() {
	// Load configuration from config package
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Initialize the database
	db, err := database.InitDB(context.Background(), cfg.DBURL)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Initialize Redis
	if err := database.InitializeRedis(); err != nil {
		log.Fatalf("failed to initialize Redis client: %v", err)
	}

	// Initialize the cache utility
	cache, err := cache.NewCache()
	if err != nil {
		log.Fatalf("failed to initialize cache: %v", err)
	}

	// Seed the bootstrap doctor account
	if err := seedDoctorAccount(db, cfg); err != nil {
		log.Fatalf("failed to seed doctor account: %v", err)
	}

	// Pass the config to SetupRoutes
	handler := routes.SetupRoutes(cache, cfg)

	// Configure and start the server
	srv := &http.Server{
		Addr:           cfg.ListenAddress,
		Handler:        handler,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		MaxHeaderBytes: 1 << 20,
		IdleTimeout:    30 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()
		log.Printf("Starting server on %s", cfg.ListenAddress)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listenAndServe(): %v", err)
		}
	}()

	// Graceful shutdown handling
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	// Create a context with a timeout for shutdown
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	log.Println("Shutting down server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server shutdown failed: %+v", err)
	}

	wg.Wait() // Wait for all goroutines to finish before exiting
	log.Println("Server exited gracefully")
}

// seedDoctorAccount ensures the doctor login exists on a fresh install.
// Without DOCTOR_EMAIL set, seeding is skipped.
func seedDoctorAccount(db *gorm.DB, cfg *config.AppConfig) error {
	if cfg.DoctorEmail == "" || cfg.DoctorPassword == "" {
		return nil
	}
	hashedPassword, err := utils.HashPassword(cfg.DoctorPassword)
	if err != nil {
		return err
	}
	return models.SeedUsers(db, uuid.New().String(), cfg.DoctorEmail, hashedPassword)
}
