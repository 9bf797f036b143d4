package main

import (
	"log"

	"vikasini/config"
	"vikasini/database"
)

// One-off bootstrap: create the schema and seed the demo accounts plus the
// starter course and job catalog. Safe to run more than once; every insert
// checks for an existing row first.
func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Seed(db, cfg.SaltRound); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Database bootstrap completed.")
}
