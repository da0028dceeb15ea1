package repository

import (
	"context"
	"errors"

	"oneiro/internal/models"

	"gorm.io/gorm"
)

// ErrInsufficientCredits is returned by Deduct when the balance is lower than
// the requested amount.
var ErrInsufficientCredits = errors.New("insufficient credits")

// CreditRepository defines interface for credit ledger operations
type CreditRepository interface {
	// GetOrCreate returns the user's balance, creating the row with the
	// default grant on first access.
	GetOrCreate(ctx context.Context, userID uint) (*models.Credit, error)
	// Deduct atomically subtracts amount from the balance. It fails with
	// ErrInsufficientCredits instead of driving the balance negative.
	Deduct(ctx context.Context, userID uint, amount int) error
}

type creditRepository struct {
	db *gorm.DB
}

// NewCreditRepository creates a new CreditRepository
func NewCreditRepository(db *gorm.DB) CreditRepository {
	return &creditRepository{db: db}
}

func (r *creditRepository) GetOrCreate(ctx context.Context, userID uint) (*models.Credit, error) {
	var credit models.Credit
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&credit).Error
	if err == nil {
		return &credit, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	credit = models.Credit{UserID: userID, Amount: models.DefaultCreditAmount}
	if err := r.db.WithContext(ctx).Create(&credit).Error; err != nil {
		// A concurrent first access may have created the row already.
		var existing models.Credit
		if lookupErr := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&existing).Error; lookupErr == nil {
			return &existing, nil
		}
		return nil, err
	}
	return &credit, nil
}

func (r *creditRepository) Deduct(ctx context.Context, userID uint, amount int) error {
	if amount <= 0 {
		return nil
	}

	// The amount >= ? guard makes the decrement atomic under concurrency.
	result := r.db.WithContext(ctx).
		Model(&models.Credit{}).
		Where("user_id = ? AND amount >= ?", userID, amount).
		Update("amount", gorm.Expr("amount - ?", amount))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInsufficientCredits
	}
	return nil
}
