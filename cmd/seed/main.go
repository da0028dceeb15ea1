// Command main runs the database seeder for Oneiro.
package main

import (
	"flag"
	"log"

	"oneiro/internal/config"
	"oneiro/internal/database"
	"oneiro/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 25, "Number of users to create")
	numDreams := flag.Int("dreams", 150, "Number of dreams to create")
	maxDays := flag.Int("max-days", 90, "Spread dream dates over this many days")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	skipBcrypt := flag.Bool("skip-bcrypt", false, "Store plaintext passwords for faster seeding")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if *shouldClean {
		if err := seed.ClearAll(db); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	if err := seed.Seed(db, seed.Options{
		NumUsers:   *numUsers,
		NumDreams:  *numDreams,
		MaxDays:    *maxDays,
		SkipBcrypt: *skipBcrypt,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All done. Test users share the password: password123")
}
