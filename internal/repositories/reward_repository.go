package repositories

import "github.com/FORIFOR/fanscout-app/internal/models"

// RewardRepository defines the interface for reward data access.
type RewardRepository interface {
	Create(reward *models.Reward) error
	GetByID(id uint) (*models.Reward, error)
	GetByUserID(userID uint) ([]models.Reward, error)
	// Redeem flips the redeemed flag. Redeeming an already-redeemed
	// reward is not rejected; the caller emits a notification per call.
	Redeem(id uint) (*models.Reward, error)
}
