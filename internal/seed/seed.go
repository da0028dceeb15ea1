package seed

import (
	"fmt"
	"log"

	"oneiro/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder.
type Options struct {
	NumUsers   int
	NumDreams  int
	MaxDays    int
	SkipBcrypt bool
}

// Seed populates the database with demo users, dreams, and social activity.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Seeding %d users and %d dreams...", opts.NumUsers, opts.NumDreams)

	f := NewFactory(db, opts)

	users := make([]*models.User, 0, opts.NumUsers)

	// A fixed account makes local login painless.
	demo, err := f.CreateUser(func(u *models.User) {
		u.Name = "Demo Dreamer"
		u.Email = "demo@example.com"
	})
	if err != nil {
		return fmt.Errorf("failed to create demo user: %w", err)
	}
	users = append(users, demo)

	for i := len(users); i < opts.NumUsers; i++ {
		user, err := f.CreateUser()
		if err != nil {
			log.Printf("Failed to create user: %v", err)
			continue
		}
		users = append(users, user)
	}
	log.Printf("Created %d users", len(users))

	dreams := make([]*models.Dream, 0, opts.NumDreams)
	for i := 0; i < opts.NumDreams; i++ {
		owner := users[f.rng.Intn(len(users))]
		dream, err := f.CreateDream(owner)
		if err != nil {
			return fmt.Errorf("failed to create dream: %w", err)
		}
		dreams = append(dreams, dream)
	}
	log.Printf("Created %d dreams", len(dreams))

	likes, comments := 0, 0
	for _, dream := range dreams {
		if !dream.IsPublic {
			continue
		}
		for _, user := range users {
			if f.rng.Float32() < 0.2 {
				if err := f.CreateLike(user, dream); err == nil {
					likes++
				}
			}
			if f.rng.Float32() < 0.1 {
				if _, err := f.CreateComment(user, dream); err == nil {
					comments++
				}
			}
		}
	}
	log.Printf("Created %d likes and %d comments", likes, comments)

	log.Println("Seeding completed")
	return nil
}

// ClearAll removes all seeded data. Deletion order respects foreign keys.
func ClearAll(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	tables := []string{
		"notifications", "dream_comments", "dream_likes", "dreams",
		"user_settings", "credits", "users",
	}
	for _, table := range tables {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}
