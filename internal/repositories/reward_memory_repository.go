package repositories

import (
	"sync"
	"time"

	"github.com/FORIFOR/fanscout-app/internal/models"
)

// MemoryRewardRepository is the in-memory implementation of RewardRepository.
type MemoryRewardRepository struct {
	rewards map[uint]models.Reward
	nextID  uint
	mu      sync.RWMutex
}

// NewMemoryRewardRepository creates a new instance of MemoryRewardRepository.
func NewMemoryRewardRepository() *MemoryRewardRepository {
	return &MemoryRewardRepository{
		rewards: make(map[uint]models.Reward),
		nextID:  1,
	}
}

// Create assigns an id and stores the reward unredeemed.
func (r *MemoryRewardRepository) Create(reward *models.Reward) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	reward.ID = r.nextID
	r.nextID++
	reward.Redeemed = false
	reward.CreatedAt = time.Now()
	r.rewards[reward.ID] = *reward
	return nil
}

// GetByID returns a copy of the reward with the given id.
func (r *MemoryRewardRepository) GetByID(id uint) (*models.Reward, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reward, ok := r.rewards[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &reward, nil
}

// GetByUserID returns the user's rewards in insertion order.
func (r *MemoryRewardRepository) GetByUserID(userID uint) ([]models.Reward, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rewardList := make([]models.Reward, 0)
	for id := uint(1); id < r.nextID; id++ {
		if reward, ok := r.rewards[id]; ok && reward.UserID == userID {
			rewardList = append(rewardList, reward)
		}
	}
	return rewardList, nil
}

// Redeem flips the redeemed flag. A second redeem call is a no-op on
// the flag but still succeeds.
func (r *MemoryRewardRepository) Redeem(id uint) (*models.Reward, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	reward, ok := r.rewards[id]
	if !ok {
		return nil, ErrNotFound
	}
	reward.Redeemed = true
	r.rewards[id] = reward
	return &reward, nil
}
