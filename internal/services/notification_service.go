package services

import (
	"fmt"
	"log"

	"github.com/FORIFOR/fanscout-app/internal/models"
	"github.com/FORIFOR/fanscout-app/internal/repositories"
	"github.com/FORIFOR/fanscout-app/pkg/rabbitmq"
)

// Pusher delivers a freshly created notification to live subscribers.
// Satisfied by realtime.Hub.
type Pusher interface {
	Publish(notification models.Notification)
}

// NotificationService owns the notification side of every domain event.
// Creation stores the record, pushes it to live connections and fans it
// out to RabbitMQ. Push and fan-out are best-effort: the stored record
// is the source of truth and is never rolled back.
type NotificationService struct {
	notificationRepo repositories.NotificationRepository
	pusher           Pusher
	mqClient         rabbitmq.Publisher
}

// NewNotificationService creates a new NotificationService. Both pusher
// and mqClient may be nil; the corresponding delivery path is skipped.
func NewNotificationService(notificationRepo repositories.NotificationRepository, pusher Pusher, mqClient rabbitmq.Publisher) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		pusher:           pusher,
		mqClient:         mqClient,
	}
}

// Notify creates a notification for a user and dispatches it to the
// realtime hub and the message queue.
func (s *NotificationService) Notify(userID uint, notificationType, message string, relatedID *uint) (*models.Notification, error) {
	notification := &models.Notification{
		UserID:    userID,
		Message:   message,
		Type:      notificationType,
		RelatedID: relatedID,
	}
	if err := s.notificationRepo.Create(notification); err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	if s.pusher != nil {
		s.pusher.Publish(*notification)
	}

	if s.mqClient != nil {
		event := map[string]interface{}{
			"notificationId": notification.ID,
			"userId":         notification.UserID,
			"type":           notification.Type,
			"message":        notification.Message,
		}
		if err := s.mqClient.PublishNotificationCreated(event); err != nil {
			log.Printf("Warning: failed to publish notification event %d: %v", notification.ID, err)
		}
	}

	return notification, nil
}

// GetForUser returns the user's notifications newest first.
func (s *NotificationService) GetForUser(userID uint) ([]models.Notification, error) {
	return s.notificationRepo.GetByUserID(userID)
}

// UnreadCount returns how many of the user's notifications are unread.
func (s *NotificationService) UnreadCount(userID uint) (int, error) {
	return s.notificationRepo.CountUnread(userID)
}

// MarkRead acknowledges a notification. Idempotent.
func (s *NotificationService) MarkRead(id uint) (*models.Notification, error) {
	return s.notificationRepo.MarkRead(id)
}
