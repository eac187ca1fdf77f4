package repositories

import (
	"sync"
	"time"

	"github.com/FORIFOR/fanscout-app/internal/models"
)

// MemoryMatchRepository is the in-memory implementation of MatchRepository.
type MemoryMatchRepository struct {
	matches map[uint]models.Match
	nextID  uint
	mu      sync.RWMutex
}

// NewMemoryMatchRepository creates a new instance of MemoryMatchRepository.
func NewMemoryMatchRepository() *MemoryMatchRepository {
	return &MemoryMatchRepository{
		matches: make(map[uint]models.Match),
		nextID:  1,
	}
}

// Create assigns an id and stores the match. The scouting club ids are
// stored as given; they are not checked against the club collection.
func (r *MemoryMatchRepository) Create(match *models.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	match.ID = r.nextID
	r.nextID++
	if match.ScoutingClubs == nil {
		match.ScoutingClubs = []uint{}
	}
	match.CreatedAt = time.Now()
	r.matches[match.ID] = *match
	return nil
}

// GetByID returns a copy of the match with the given id.
func (r *MemoryMatchRepository) GetByID(id uint) (*models.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	match, ok := r.matches[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &match, nil
}

// GetAll returns all matches in insertion order.
func (r *MemoryMatchRepository) GetAll() ([]models.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matchList := make([]models.Match, 0, len(r.matches))
	for id := uint(1); id < r.nextID; id++ {
		if match, ok := r.matches[id]; ok {
			matchList = append(matchList, match)
		}
	}
	return matchList, nil
}
