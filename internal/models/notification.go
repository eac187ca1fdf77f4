package models

import "time"

// Notification types produced by the domain event rules.
const (
	NotificationReportLiked    = "report_liked"
	NotificationRewardEarned   = "reward_earned"
	NotificationRewardRedeemed = "reward_redeemed"
)

// Notification is created only as a side effect of a domain event and
// mutated only by the read acknowledgement, which is idempotent.
// RelatedID points at the entity that triggered the notification.
type Notification struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    uint      `json:"userId"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Read      bool      `json:"read" gorm:"default:false"`
	RelatedID *uint     `json:"relatedId"`
	CreatedAt time.Time `json:"createdAt"`
}
