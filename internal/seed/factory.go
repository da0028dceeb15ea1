// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"oneiro/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// imageStyles mirrors the style tags the image pipeline understands.
var imageStyles = []string{
	"abstract", "anime", "watercolor", "cyberpunk", "van-gogh",
	"minimalist", "oil", "pixel-art", "realistic", "surrealist",
}

var dreamThemes = []string{
	"flying over a city I have never seen",
	"being back in my childhood home, but the rooms were rearranged",
	"an endless staircase that kept changing direction",
	"talking to someone whose face I could never quite see",
	"the ocean rising slowly while everyone stayed calm",
	"finding a hidden door in a familiar building",
	"running late for something important that kept moving further away",
	"a garden where the plants hummed quietly",
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	opts Options
	rng  *rand.Rand
}

// NewFactory creates a Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	// #nosec G404: acceptable for seeding
	return &Factory{db: db, opts: opts, rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// CreateUser constructs and persists a sample user together with its credit
// grant and settings row, the same rows signup would create.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Name:  gofakeit.Name(),
		Email: gofakeit.Email(),
		Image: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
	}

	if f.opts.SkipBcrypt {
		user.Password = "password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}

	credit := &models.Credit{UserID: user.ID, Amount: models.DefaultCreditAmount}
	if err := f.db.Create(credit).Error; err != nil {
		return nil, err
	}

	settings := &models.UserSettings{
		UserID:   user.ID,
		Language: models.DefaultLanguage,
		Theme:    models.DefaultTheme,
	}
	if err := f.db.Create(settings).Error; err != nil {
		return nil, err
	}

	return user, nil
}

// CreateDream constructs and persists a sample dream for the given user.
// Roughly a third of dreams are public and about half carry an
// interpretation; a smaller share has a generated image.
func (f *Factory) CreateDream(user *models.User, overrides ...func(*models.Dream)) (*models.Dream, error) {
	theme := dreamThemes[f.rng.Intn(len(dreamThemes))]

	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	daysBack := f.rng.Intn(maxDays)
	date := models.NormalizeDreamDate(time.Now().AddDate(0, 0, -daysBack))

	dream := &models.Dream{
		Title:       gofakeit.Sentence(4),
		Description: fmt.Sprintf("I dreamt about %s. %s", theme, gofakeit.Paragraph(1, 2, 8, " ")),
		Date:        date,
		IsPublic:    f.rng.Float32() < 0.35,
		UserID:      user.ID,
	}

	if f.rng.Float32() < 0.5 {
		interpretation := gofakeit.Paragraph(1, 3, 10, " ")
		dream.Interpretation = &interpretation
	}
	if f.rng.Float32() < 0.25 {
		style := imageStyles[f.rng.Intn(len(imageStyles))]
		imageURL := fmt.Sprintf("https://picsum.photos/seed/%s/1024/1024", gofakeit.UUID())
		dream.ImageStyle = &style
		dream.ImageURL = &imageURL
	}

	for _, override := range overrides {
		override(dream)
	}

	if err := f.db.Create(dream).Error; err != nil {
		return nil, err
	}
	return dream, nil
}

// CreateLike persists a like from user on dream and, when the liker is not
// the owner, the matching notification.
func (f *Factory) CreateLike(user *models.User, dream *models.Dream) error {
	like := &models.DreamLike{UserID: user.ID, DreamID: dream.ID}
	if err := f.db.Create(like).Error; err != nil {
		return err
	}
	if user.ID == dream.UserID {
		return nil
	}
	notification := &models.Notification{
		Type:    models.NotificationTypeLike,
		UserID:  dream.UserID,
		DreamID: dream.ID,
	}
	return f.db.Create(notification).Error
}

// CreateComment persists a comment on dream authored by user, with the
// owner's notification when applicable.
func (f *Factory) CreateComment(user *models.User, dream *models.Dream, overrides ...func(*models.DreamComment)) (*models.DreamComment, error) {
	comment := &models.DreamComment{
		Content: gofakeit.Sentence(8),
		UserID:  user.ID,
		DreamID: dream.ID,
	}

	for _, override := range overrides {
		override(comment)
	}

	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}

	if user.ID != dream.UserID {
		notification := &models.Notification{
			Type:    models.NotificationTypeComment,
			UserID:  dream.UserID,
			DreamID: dream.ID,
		}
		if err := f.db.Create(notification).Error; err != nil {
			return nil, err
		}
	}

	return comment, nil
}
