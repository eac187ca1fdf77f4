package repositories

import "github.com/FORIFOR/fanscout-app/internal/models"

// ReportRepository defines the interface for scouting report data access.
type ReportRepository interface {
	Create(report *models.ScoutingReport) error
	GetByID(id uint) (*models.ScoutingReport, error)
	GetAll() ([]models.ScoutingReport, error)
	GetByUserID(userID uint) ([]models.ScoutingReport, error)
	GetByMatchID(matchID uint) ([]models.ScoutingReport, error)
	GetByClubID(clubID uint) ([]models.ScoutingReport, error)
	// Like flips the liked flag and records who liked the report and any
	// feedback. Nothing stops a report from being liked twice; the
	// caller re-applies the award side effects each time.
	Like(id uint, likedBy *uint, feedback *string) (*models.ScoutingReport, error)
	AttachPhoto(id uint, photoURL string) (*models.ScoutingReport, error)
}
