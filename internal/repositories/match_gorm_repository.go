package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/FORIFOR/fanscout-app/internal/models"
)

// GORMMatchRepository is a GORM implementation of MatchRepository.
type GORMMatchRepository struct {
	db *gorm.DB
}

// NewGORMMatchRepository creates a new instance of GORMMatchRepository.
func NewGORMMatchRepository(db *gorm.DB) *GORMMatchRepository {
	return &GORMMatchRepository{db: db}
}

// Create creates a new match in the database. Scouting club ids are
// stored as given, without a foreign key constraint.
func (r *GORMMatchRepository) Create(match *models.Match) error {
	if match.ScoutingClubs == nil {
		match.ScoutingClubs = []uint{}
	}
	if err := r.db.Create(match).Error; err != nil {
		return fmt.Errorf("failed to create match: %w", err)
	}
	return nil
}

// GetByID retrieves a match by id.
func (r *GORMMatchRepository) GetByID(id uint) (*models.Match, error) {
	var match models.Match
	if err := r.db.First(&match, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get match %d: %w", id, err)
	}
	return &match, nil
}

// GetAll retrieves all matches in insertion order.
func (r *GORMMatchRepository) GetAll() ([]models.Match, error) {
	var matches []models.Match
	if err := r.db.Order("id").Find(&matches).Error; err != nil {
		return nil, fmt.Errorf("failed to get all matches: %w", err)
	}
	return matches, nil
}
