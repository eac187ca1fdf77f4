package repositories

import (
	"sync"
	"time"

	"github.com/FORIFOR/fanscout-app/internal/models"
)

// MemoryClubRepository is the in-memory implementation of ClubRepository.
type MemoryClubRepository struct {
	clubs  map[uint]models.Club
	nextID uint
	mu     sync.RWMutex
}

// NewMemoryClubRepository creates a new instance of MemoryClubRepository.
func NewMemoryClubRepository() *MemoryClubRepository {
	return &MemoryClubRepository{
		clubs:  make(map[uint]models.Club),
		nextID: 1,
	}
}

// Create assigns an id and stores the club.
func (r *MemoryClubRepository) Create(club *models.Club) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	club.ID = r.nextID
	r.nextID++
	club.CreatedAt = time.Now()
	r.clubs[club.ID] = *club
	return nil
}

// GetByID returns a copy of the club with the given id.
func (r *MemoryClubRepository) GetByID(id uint) (*models.Club, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	club, ok := r.clubs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &club, nil
}

// GetAll returns all clubs in insertion order.
func (r *MemoryClubRepository) GetAll() ([]models.Club, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	clubList := make([]models.Club, 0, len(r.clubs))
	for id := uint(1); id < r.nextID; id++ {
		if club, ok := r.clubs[id]; ok {
			clubList = append(clubList, club)
		}
	}
	return clubList, nil
}
