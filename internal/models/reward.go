package models

import "time"

// Reward is a recognition item granted to a user. Creation and
// redemption both trigger a notification for the owning user.
type Reward struct {
	ID           uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID       uint      `json:"userId" validate:"required"`
	Title        string    `json:"title" validate:"required,max=100"`
	Description  string    `json:"description" validate:"omitempty,max=500"`
	PointsEarned int       `json:"pointsEarned" validate:"gte=0"`
	RewardType   string    `json:"rewardType" validate:"required,max=50"`
	Redeemed     bool      `json:"redeemed" gorm:"default:false"`
	CreatedAt    time.Time `json:"createdAt"`
}
