package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/FORIFOR/fanscout-app/internal/models"
	"github.com/FORIFOR/fanscout-app/internal/repositories"
)

// LikeRewardPoints is the fixed award applied to a report's author each
// time the report is liked. The award is re-applied on a second like;
// there is deliberately no re-like guard.
const LikeRewardPoints = 10

// ErrClubNotScouting is returned when a report targets a club that is
// not scouting the referenced match.
var ErrClubNotScouting = errors.New("club is not scouting this match")

// ReportService handles business logic for scouting reports, including
// the like transition and its side effects.
type ReportService struct {
	reportRepo    repositories.ReportRepository
	userRepo      repositories.UserRepository
	matchRepo     repositories.MatchRepository
	notifications *NotificationService
}

// NewReportService creates a new ReportService.
func NewReportService(reportRepo repositories.ReportRepository, userRepo repositories.UserRepository, matchRepo repositories.MatchRepository, notifications *NotificationService) *ReportService {
	return &ReportService{
		reportRepo:    reportRepo,
		userRepo:      userRepo,
		matchRepo:     matchRepo,
		notifications: notifications,
	}
}

// CreateReport stores a new report. When the referenced match resolves,
// the target club must be among that match's scouting clubs; a dangling
// match reference is tolerated, matching the store's general tolerance
// of unresolved foreign keys.
func (s *ReportService) CreateReport(report *models.ScoutingReport) error {
	match, err := s.matchRepo.GetByID(report.MatchID)
	if err == nil {
		scouting := false
		for _, clubID := range match.ScoutingClubs {
			if clubID == report.ClubID {
				scouting = true
				break
			}
		}
		if !scouting {
			return ErrClubNotScouting
		}
	}

	if err := s.reportRepo.Create(report); err != nil {
		return fmt.Errorf("failed to create scouting report: %w", err)
	}
	return nil
}

// GetAllReports retrieves all reports.
func (s *ReportService) GetAllReports() ([]models.ScoutingReport, error) {
	return s.reportRepo.GetAll()
}

// GetReportByID retrieves a single report by its id.
func (s *ReportService) GetReportByID(id uint) (*models.ScoutingReport, error) {
	return s.reportRepo.GetByID(id)
}

// GetReportsByUserID retrieves the reports submitted by a user.
func (s *ReportService) GetReportsByUserID(userID uint) ([]models.ScoutingReport, error) {
	return s.reportRepo.GetByUserID(userID)
}

// GetReportsByMatchID retrieves the reports submitted for a match.
func (s *ReportService) GetReportsByMatchID(matchID uint) ([]models.ScoutingReport, error) {
	return s.reportRepo.GetByMatchID(matchID)
}

// GetReportsByClubID retrieves the reports targeting a club.
func (s *ReportService) GetReportsByClubID(clubID uint) ([]models.ScoutingReport, error) {
	return s.reportRepo.GetByClubID(clubID)
}

// LikeReport marks a report as liked and fires the like event rules:
// the author is awarded points and notified. The like itself is the
// primary mutation; the side effects run after it and never roll it
// back, so a failure there is logged and the updated report is still
// returned.
func (s *ReportService) LikeReport(id uint, adminID *uint, feedback *string) (*models.ScoutingReport, error) {
	report, err := s.reportRepo.Like(id, adminID, feedback)
	if err != nil {
		return nil, err
	}

	if _, err := s.userRepo.AddRewardPoints(report.UserID, LikeRewardPoints); err != nil {
		log.Printf("Warning: failed to award points to user %d for report %d: %v", report.UserID, report.ID, err)
	}

	message := fmt.Sprintf("Your scouting report on %s was liked by a club!", report.PlayerName)
	if _, err := s.notifications.Notify(report.UserID, models.NotificationReportLiked, message, &report.ID); err != nil {
		log.Printf("Warning: failed to notify user %d about liked report %d: %v", report.UserID, report.ID, err)
	}

	return report, nil
}

// AttachPhoto records the photo URL for a report.
func (s *ReportService) AttachPhoto(id uint, photoURL string) (*models.ScoutingReport, error) {
	return s.reportRepo.AttachPhoto(id, photoURL)
}
