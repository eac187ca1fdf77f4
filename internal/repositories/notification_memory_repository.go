package repositories

import (
	"sync"
	"time"

	"github.com/FORIFOR/fanscout-app/internal/models"
)

// MemoryNotificationRepository is the in-memory implementation of
// NotificationRepository.
type MemoryNotificationRepository struct {
	notifications map[uint]models.Notification
	nextID        uint
	mu            sync.RWMutex
}

// NewMemoryNotificationRepository creates a new instance of
// MemoryNotificationRepository.
func NewMemoryNotificationRepository() *MemoryNotificationRepository {
	return &MemoryNotificationRepository{
		notifications: make(map[uint]models.Notification),
		nextID:        1,
	}
}

// Create assigns an id and stores the notification unread.
func (r *MemoryNotificationRepository) Create(notification *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	notification.ID = r.nextID
	r.nextID++
	notification.Read = false
	notification.CreatedAt = time.Now()
	r.notifications[notification.ID] = *notification
	return nil
}

// GetByID returns a copy of the notification with the given id.
func (r *MemoryNotificationRepository) GetByID(id uint) (*models.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	notification, ok := r.notifications[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &notification, nil
}

// GetByUserID returns the user's notifications newest first. Ids are
// assigned in creation order, so a descending id scan gives descending
// creation time.
func (r *MemoryNotificationRepository) GetByUserID(userID uint) ([]models.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	notificationList := make([]models.Notification, 0)
	for id := r.nextID; id > 1; id-- {
		if notification, ok := r.notifications[id-1]; ok && notification.UserID == userID {
			notificationList = append(notificationList, notification)
		}
	}
	return notificationList, nil
}

// CountUnread returns how many of the user's notifications are unread.
func (r *MemoryNotificationRepository) CountUnread(userID uint) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, notification := range r.notifications {
		if notification.UserID == userID && !notification.Read {
			count++
		}
	}
	return count, nil
}

// MarkRead acknowledges a notification. Already-read notifications stay
// read; no error, no duplicate.
func (r *MemoryNotificationRepository) MarkRead(id uint) (*models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	notification, ok := r.notifications[id]
	if !ok {
		return nil, ErrNotFound
	}
	notification.Read = true
	r.notifications[id] = notification
	return &notification, nil
}
