package services

import (
	"fmt"
	"log"

	"github.com/FORIFOR/fanscout-app/internal/models"
	"github.com/FORIFOR/fanscout-app/internal/repositories"
)

// RewardService handles business logic for rewards. Creating and
// redeeming a reward both notify the owning user; redeeming twice keeps
// the redeemed flag set but still emits a notification per call.
type RewardService struct {
	rewardRepo    repositories.RewardRepository
	notifications *NotificationService
}

// NewRewardService creates a new RewardService.
func NewRewardService(rewardRepo repositories.RewardRepository, notifications *NotificationService) *RewardService {
	return &RewardService{
		rewardRepo:    rewardRepo,
		notifications: notifications,
	}
}

// CreateReward stores a new reward and notifies the user.
func (s *RewardService) CreateReward(reward *models.Reward) error {
	if err := s.rewardRepo.Create(reward); err != nil {
		return fmt.Errorf("failed to create reward: %w", err)
	}

	message := fmt.Sprintf("You earned a new reward: %s", reward.Title)
	if _, err := s.notifications.Notify(reward.UserID, models.NotificationRewardEarned, message, &reward.ID); err != nil {
		log.Printf("Warning: failed to notify user %d about reward %d: %v", reward.UserID, reward.ID, err)
	}
	return nil
}

// GetRewardsByUserID retrieves the user's rewards.
func (s *RewardService) GetRewardsByUserID(userID uint) ([]models.Reward, error) {
	return s.rewardRepo.GetByUserID(userID)
}

// RedeemReward marks a reward redeemed and notifies the user.
func (s *RewardService) RedeemReward(id uint) (*models.Reward, error) {
	reward, err := s.rewardRepo.Redeem(id)
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf("You redeemed your reward: %s", reward.Title)
	if _, err := s.notifications.Notify(reward.UserID, models.NotificationRewardRedeemed, message, &reward.ID); err != nil {
		log.Printf("Warning: failed to notify user %d about redeemed reward %d: %v", reward.UserID, reward.ID, err)
	}
	return reward, nil
}
