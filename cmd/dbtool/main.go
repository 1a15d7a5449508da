package main

import (
	"database/sql"
	"log"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"freight-quote-service/internal/adapters/repositories"
	"freight-quote-service/internal/config"
	"freight-quote-service/internal/platform/db"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	database, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	seedDir := config.Get("SEED_DIR", "data/seeds")
	if err := initAndSeed(database, seedDir); err != nil {
		log.Fatal(err)
	}
}

func initAndSeed(database *sql.DB, seedDir string) error {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(database); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding database...")
	if err := repositories.SeedDestinationsFromJSON(database, filepath.Join(seedDir, "destinations.json")); err != nil {
		log.Fatalf("seeding destinations failed: %v", err)
	}
	if err := repositories.SeedVehiclesFromJSON(database, filepath.Join(seedDir, "vehicles.json")); err != nil {
		log.Fatalf("seeding vehicles failed: %v", err)
	}
	if err := repositories.SeedBusinessHoursFromJSON(database, filepath.Join(seedDir, "business_hours.json")); err != nil {
		log.Fatalf("seeding business hours failed: %v", err)
	}
	log.Println("Seeding complete.")

	return nil
}
