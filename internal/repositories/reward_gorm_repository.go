package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/FORIFOR/fanscout-app/internal/models"
)

// GORMRewardRepository is a GORM implementation of RewardRepository.
type GORMRewardRepository struct {
	db *gorm.DB
}

// NewGORMRewardRepository creates a new instance of GORMRewardRepository.
func NewGORMRewardRepository(db *gorm.DB) *GORMRewardRepository {
	return &GORMRewardRepository{db: db}
}

// Create stores a new unredeemed reward.
func (r *GORMRewardRepository) Create(reward *models.Reward) error {
	reward.Redeemed = false
	if err := r.db.Create(reward).Error; err != nil {
		return fmt.Errorf("failed to create reward: %w", err)
	}
	return nil
}

// GetByID retrieves a reward by id.
func (r *GORMRewardRepository) GetByID(id uint) (*models.Reward, error) {
	var reward models.Reward
	if err := r.db.First(&reward, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get reward %d: %w", id, err)
	}
	return &reward, nil
}

// GetByUserID retrieves the user's rewards in insertion order.
func (r *GORMRewardRepository) GetByUserID(userID uint) ([]models.Reward, error) {
	var rewards []models.Reward
	if err := r.db.Where("user_id = ?", userID).Order("id").Find(&rewards).Error; err != nil {
		return nil, fmt.Errorf("failed to list rewards for user %d: %w", userID, err)
	}
	return rewards, nil
}

// Redeem flips the redeemed flag; a second call is a no-op on the flag.
func (r *GORMRewardRepository) Redeem(id uint) (*models.Reward, error) {
	var reward models.Reward
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&reward, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		reward.Redeemed = true
		return tx.Model(&reward).Update("redeemed", true).Error
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to redeem reward %d: %w", id, err)
	}
	return &reward, nil
}
