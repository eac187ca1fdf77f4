package repositories

import (
	"sync"
	"time"

	"github.com/FORIFOR/fanscout-app/internal/models"
)

// MemoryUserRepository is the in-memory implementation of UserRepository.
// Ids are assigned from a per-collection counter starting at 1 and are
// never reused. All returns are copies; callers never see map-backed
// records directly.
type MemoryUserRepository struct {
	users  map[uint]models.User
	nextID uint
	mu     sync.RWMutex
}

// NewMemoryUserRepository creates a new instance of MemoryUserRepository.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users:  make(map[uint]models.User),
		nextID: 1,
	}
}

// Create assigns an id, fills defaults and stores the user.
func (r *MemoryUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.ID = r.nextID
	r.nextID++
	user.RewardPoints = 0
	user.CreatedAt = time.Now()
	r.users[user.ID] = *user
	return nil
}

// GetByID returns a copy of the user with the given id.
func (r *MemoryUserRepository) GetByID(id uint) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

// GetByUsername returns the user with the given username.
func (r *MemoryUserRepository) GetByUsername(username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for id := uint(1); id < r.nextID; id++ {
		if user, ok := r.users[id]; ok && user.Username == username {
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

// GetByEmail returns the user with the given email address.
func (r *MemoryUserRepository) GetByEmail(email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for id := uint(1); id < r.nextID; id++ {
		if user, ok := r.users[id]; ok && user.Email == email {
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

// AddRewardPoints applies a point delta, clamping the balance at zero.
func (r *MemoryUserRepository) AddRewardPoints(id uint, delta int) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	user.RewardPoints += delta
	if user.RewardPoints < 0 {
		user.RewardPoints = 0
	}
	r.users[id] = user
	return &user, nil
}
