package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/FORIFOR/fanscout-app/internal/models"
)

// GORMClubRepository is a GORM implementation of ClubRepository.
type GORMClubRepository struct {
	db *gorm.DB
}

// NewGORMClubRepository creates a new instance of GORMClubRepository.
func NewGORMClubRepository(db *gorm.DB) *GORMClubRepository {
	return &GORMClubRepository{db: db}
}

// Create creates a new club in the database.
func (r *GORMClubRepository) Create(club *models.Club) error {
	if err := r.db.Create(club).Error; err != nil {
		return fmt.Errorf("failed to create club: %w", err)
	}
	return nil
}

// GetByID retrieves a club by id.
func (r *GORMClubRepository) GetByID(id uint) (*models.Club, error) {
	var club models.Club
	if err := r.db.First(&club, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get club %d: %w", id, err)
	}
	return &club, nil
}

// GetAll retrieves all clubs in insertion order.
func (r *GORMClubRepository) GetAll() ([]models.Club, error) {
	var clubs []models.Club
	if err := r.db.Order("id").Find(&clubs).Error; err != nil {
		return nil, fmt.Errorf("failed to get all clubs: %w", err)
	}
	return clubs, nil
}
