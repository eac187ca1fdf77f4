package repositories

import "github.com/FORIFOR/fanscout-app/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	// AddRewardPoints applies a point delta to the user's cumulative
	// balance, clamped so the balance never goes below zero.
	AddRewardPoints(id uint, delta int) (*models.User, error)
}
