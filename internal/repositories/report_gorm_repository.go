package repositories

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/FORIFOR/fanscout-app/internal/models"
)

// GORMReportRepository is a GORM implementation of ReportRepository.
type GORMReportRepository struct {
	db *gorm.DB
}

// NewGORMReportRepository creates a new instance of GORMReportRepository.
func NewGORMReportRepository(db *gorm.DB) *GORMReportRepository {
	return &GORMReportRepository{db: db}
}

// Create creates a new report in the database with a clean like state.
func (r *GORMReportRepository) Create(report *models.ScoutingReport) error {
	report.Liked = false
	report.LikedAt = nil
	report.LikedBy = nil
	report.Feedback = nil
	if err := r.db.Create(report).Error; err != nil {
		return fmt.Errorf("failed to create scouting report: %w", err)
	}
	return nil
}

// GetByID retrieves a report by id.
func (r *GORMReportRepository) GetByID(id uint) (*models.ScoutingReport, error) {
	var report models.ScoutingReport
	if err := r.db.First(&report, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get scouting report %d: %w", id, err)
	}
	return &report, nil
}

// GetAll retrieves all reports in insertion order.
func (r *GORMReportRepository) GetAll() ([]models.ScoutingReport, error) {
	return r.findWhere(nil)
}

// GetByUserID retrieves the reports submitted by the given user.
func (r *GORMReportRepository) GetByUserID(userID uint) ([]models.ScoutingReport, error) {
	return r.findWhere(map[string]interface{}{"user_id": userID})
}

// GetByMatchID retrieves the reports submitted for the given match.
func (r *GORMReportRepository) GetByMatchID(matchID uint) ([]models.ScoutingReport, error) {
	return r.findWhere(map[string]interface{}{"match_id": matchID})
}

// GetByClubID retrieves the reports targeting the given club.
func (r *GORMReportRepository) GetByClubID(clubID uint) ([]models.ScoutingReport, error) {
	return r.findWhere(map[string]interface{}{"club_id": clubID})
}

func (r *GORMReportRepository) findWhere(conds map[string]interface{}) ([]models.ScoutingReport, error) {
	var reports []models.ScoutingReport
	query := r.db.Order("id")
	if conds != nil {
		query = query.Where(conds)
	}
	if err := query.Find(&reports).Error; err != nil {
		return nil, fmt.Errorf("failed to list scouting reports: %w", err)
	}
	return reports, nil
}

// Like flips the liked flag and records the liking admin and feedback.
func (r *GORMReportRepository) Like(id uint, likedBy *uint, feedback *string) (*models.ScoutingReport, error) {
	var report models.ScoutingReport
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&report, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		now := time.Now()
		report.Liked = true
		report.LikedAt = &now
		report.LikedBy = likedBy
		report.Feedback = feedback
		return tx.Model(&report).Updates(map[string]interface{}{
			"liked":    true,
			"liked_at": report.LikedAt,
			"liked_by": report.LikedBy,
			"feedback": report.Feedback,
		}).Error
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to like scouting report %d: %w", id, err)
	}
	return &report, nil
}

// AttachPhoto records the photo URL for a report.
func (r *GORMReportRepository) AttachPhoto(id uint, photoURL string) (*models.ScoutingReport, error) {
	var report models.ScoutingReport
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&report, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		report.PhotoURL = &photoURL
		return tx.Model(&report).Update("photo_url", photoURL).Error
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to attach photo to scouting report %d: %w", id, err)
	}
	return &report, nil
}
