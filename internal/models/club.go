package models

import "time"

// Club represents a football club. Clubs flagged with IsAdmin can like
// scouting reports. Immutable after creation.
type Club struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" validate:"required,min=2,max=100"`
	Logo        string    `json:"logo" validate:"omitempty,max=500"`
	League      string    `json:"league" validate:"required,max=100"`
	Description string    `json:"description" validate:"omitempty,max=500"`
	IsAdmin     bool      `json:"isAdmin"`
	CreatedAt   time.Time `json:"createdAt"`
}
