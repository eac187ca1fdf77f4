package repositories

import "github.com/FORIFOR/fanscout-app/internal/models"

// ClubRepository defines the interface for club data access.
type ClubRepository interface {
	Create(club *models.Club) error
	GetByID(id uint) (*models.Club, error)
	GetAll() ([]models.Club, error)
}
