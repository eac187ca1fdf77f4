package repositories

import "github.com/FORIFOR/fanscout-app/internal/models"

// MatchRepository defines the interface for match data access.
type MatchRepository interface {
	Create(match *models.Match) error
	GetByID(id uint) (*models.Match, error)
	GetAll() ([]models.Match, error)
}
