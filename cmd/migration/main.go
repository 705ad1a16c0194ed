package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/infrastructure/database"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: .env file not found: %v", err)
	}

	path := flag.String("path", "migrations", "directory containing the SQL migrations")
	flag.Parse()

	if err := database.RunMigrations(*path); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	log.Println("migrations applied successfully")
}
