package services

import (
	"github.com/FORIFOR/fanscout-app/internal/models"
	"github.com/FORIFOR/fanscout-app/internal/repositories"
)

// MatchService handles business logic for matches, including the
// read-side enrichment that resolves club references.
type MatchService struct {
	matchRepo repositories.MatchRepository
	clubRepo  repositories.ClubRepository
}

// NewMatchService creates a new MatchService.
func NewMatchService(matchRepo repositories.MatchRepository, clubRepo repositories.ClubRepository) *MatchService {
	return &MatchService{
		matchRepo: matchRepo,
		clubRepo:  clubRepo,
	}
}

// CreateMatch stores a new match.
func (s *MatchService) CreateMatch(match *models.Match) error {
	return s.matchRepo.Create(match)
}

// GetAllMatches retrieves all matches with club references resolved.
func (s *MatchService) GetAllMatches() ([]models.MatchDetail, error) {
	matches, err := s.matchRepo.GetAll()
	if err != nil {
		return nil, err
	}

	details := make([]models.MatchDetail, 0, len(matches))
	for _, match := range matches {
		details = append(details, s.enrich(match))
	}
	return details, nil
}

// GetMatchByID retrieves a single match with club references resolved.
func (s *MatchService) GetMatchByID(id uint) (*models.MatchDetail, error) {
	match, err := s.matchRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	detail := s.enrich(*match)
	return &detail, nil
}

// enrich resolves the home team, away team and scouting club ids to
// full club records. Ids with no matching club are dropped silently;
// a dangling reference is not an error here.
func (s *MatchService) enrich(match models.Match) models.MatchDetail {
	detail := models.MatchDetail{Match: match}

	if homeTeam, err := s.clubRepo.GetByID(match.HomeTeamID); err == nil {
		detail.HomeTeam = homeTeam
	}
	if awayTeam, err := s.clubRepo.GetByID(match.AwayTeamID); err == nil {
		detail.AwayTeam = awayTeam
	}

	detail.ScoutingClubs = make([]models.Club, 0, len(match.ScoutingClubs))
	for _, clubID := range match.ScoutingClubs {
		if club, err := s.clubRepo.GetByID(clubID); err == nil {
			detail.ScoutingClubs = append(detail.ScoutingClubs, *club)
		}
	}
	return detail
}
