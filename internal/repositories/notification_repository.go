package repositories

import "github.com/FORIFOR/fanscout-app/internal/models"

// NotificationRepository defines the interface for notification data access.
type NotificationRepository interface {
	Create(notification *models.Notification) error
	GetByID(id uint) (*models.Notification, error)
	// GetByUserID returns the user's notifications newest first.
	GetByUserID(userID uint) ([]models.Notification, error)
	CountUnread(userID uint) (int, error)
	// MarkRead acknowledges a notification. Marking an already-read
	// notification is a no-op success.
	MarkRead(id uint) (*models.Notification, error)
}
