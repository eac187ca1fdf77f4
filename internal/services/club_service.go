package services

import (
	"github.com/FORIFOR/fanscout-app/internal/models"
	"github.com/FORIFOR/fanscout-app/internal/repositories"
)

// ClubService handles business logic related to clubs.
type ClubService struct {
	repo repositories.ClubRepository
}

// NewClubService creates a new ClubService.
func NewClubService(repo repositories.ClubRepository) *ClubService {
	return &ClubService{repo: repo}
}

// GetAllClubs retrieves all clubs.
func (s *ClubService) GetAllClubs() ([]models.Club, error) {
	return s.repo.GetAll()
}

// GetClubByID retrieves a single club by its id.
func (s *ClubService) GetClubByID(id uint) (*models.Club, error) {
	return s.repo.GetByID(id)
}

// CreateClub creates a new club.
func (s *ClubService) CreateClub(club *models.Club) error {
	return s.repo.Create(club)
}
