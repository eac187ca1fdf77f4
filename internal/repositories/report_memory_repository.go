package repositories

import (
	"sync"
	"time"

	"github.com/FORIFOR/fanscout-app/internal/models"
)

// MemoryReportRepository is the in-memory implementation of ReportRepository.
type MemoryReportRepository struct {
	reports map[uint]models.ScoutingReport
	nextID  uint
	mu      sync.RWMutex
}

// NewMemoryReportRepository creates a new instance of MemoryReportRepository.
func NewMemoryReportRepository() *MemoryReportRepository {
	return &MemoryReportRepository{
		reports: make(map[uint]models.ScoutingReport),
		nextID:  1,
	}
}

// Create assigns an id, resets the like state and stores the report.
func (r *MemoryReportRepository) Create(report *models.ScoutingReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	report.ID = r.nextID
	r.nextID++
	report.Liked = false
	report.LikedAt = nil
	report.LikedBy = nil
	report.Feedback = nil
	report.CreatedAt = time.Now()
	r.reports[report.ID] = *report
	return nil
}

// GetByID returns a copy of the report with the given id.
func (r *MemoryReportRepository) GetByID(id uint) (*models.ScoutingReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	report, ok := r.reports[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &report, nil
}

// GetAll returns all reports in insertion order.
func (r *MemoryReportRepository) GetAll() ([]models.ScoutingReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(func(models.ScoutingReport) bool { return true }), nil
}

// GetByUserID returns the reports submitted by the given user.
func (r *MemoryReportRepository) GetByUserID(userID uint) ([]models.ScoutingReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(func(rep models.ScoutingReport) bool { return rep.UserID == userID }), nil
}

// GetByMatchID returns the reports submitted for the given match.
func (r *MemoryReportRepository) GetByMatchID(matchID uint) ([]models.ScoutingReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(func(rep models.ScoutingReport) bool { return rep.MatchID == matchID }), nil
}

// GetByClubID returns the reports targeting the given club.
func (r *MemoryReportRepository) GetByClubID(clubID uint) ([]models.ScoutingReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(func(rep models.ScoutingReport) bool { return rep.ClubID == clubID }), nil
}

// filter scans the collection in id order. Linear, fine at this scale.
// Callers must hold the read lock.
func (r *MemoryReportRepository) filter(keep func(models.ScoutingReport) bool) []models.ScoutingReport {
	reportList := make([]models.ScoutingReport, 0, len(r.reports))
	for id := uint(1); id < r.nextID; id++ {
		if report, ok := r.reports[id]; ok && keep(report) {
			reportList = append(reportList, report)
		}
	}
	return reportList
}

// Like flips the liked flag and records the liking admin and feedback.
// An already-liked report is overwritten, not rejected.
func (r *MemoryReportRepository) Like(id uint, likedBy *uint, feedback *string) (*models.ScoutingReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	report, ok := r.reports[id]
	if !ok {
		return nil, ErrNotFound
	}
	now := time.Now()
	report.Liked = true
	report.LikedAt = &now
	report.LikedBy = likedBy
	report.Feedback = feedback
	r.reports[id] = report
	return &report, nil
}

// AttachPhoto records the photo URL for a report.
func (r *MemoryReportRepository) AttachPhoto(id uint, photoURL string) (*models.ScoutingReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	report, ok := r.reports[id]
	if !ok {
		return nil, ErrNotFound
	}
	report.PhotoURL = &photoURL
	r.reports[id] = report
	return &report, nil
}
