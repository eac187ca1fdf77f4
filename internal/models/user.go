package models

import "time"

// User represents a fan account. RewardPoints only grows through
// like awards and is never allowed to go negative.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string    `json:"username" gorm:"uniqueIndex;type:varchar(100)"`
	Password     string    `json:"-" gorm:"type:varchar(255)"` // bcrypt hash, never serialized
	FullName     string    `json:"fullName"`
	Email        string    `json:"email" gorm:"uniqueIndex;type:varchar(255)"`
	ProfileImage *string   `json:"profileImage"`
	RewardPoints int       `json:"rewardPoints" gorm:"default:0"`
	CreatedAt    time.Time `json:"createdAt"`
}
