package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/FORIFOR/fanscout-app/internal/repositories"
	"github.com/FORIFOR/fanscout-app/internal/services"
)

// NotificationHandler handles HTTP requests for notifications. This is
// the snapshot-fetch side of the realtime contract: clients load the
// current list and unread count here, then subscribe on the push
// channel for everything created afterwards.
type NotificationHandler struct {
	service *services.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(service *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// RegisterRoutes registers the notification routes.
func (h *NotificationHandler) RegisterRoutes(router fiber.Router) {
	notificationRoutes := router.Group("/notifications")
	notificationRoutes.Get("/", h.HandleGetNotifications)
	notificationRoutes.Get("/unread-count", h.HandleUnreadCount)
	notificationRoutes.Post("/:id/read", h.HandleMarkRead)
}

// HandleGetNotifications lists a user's notifications newest first.
func (h *NotificationHandler) HandleGetNotifications(c *fiber.Ctx) error {
	userID, ok, err := parseUintQuery(c, "userId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "userId query parameter is required"})
	}

	notifications, err := h.service.GetForUser(userID)
	if err != nil {
		log.Printf("Error listing notifications for user %d: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve notifications",
		})
	}
	return c.JSON(notifications)
}

// HandleUnreadCount returns the user's unread notification count.
func (h *NotificationHandler) HandleUnreadCount(c *fiber.Ctx) error {
	userID, ok, err := parseUintQuery(c, "userId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "userId query parameter is required"})
	}

	count, err := h.service.UnreadCount(userID)
	if err != nil {
		log.Printf("Error counting unread notifications for user %d: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not count notifications",
		})
	}
	return c.JSON(fiber.Map{"count": count})
}

// HandleMarkRead acknowledges a notification. Marking twice succeeds
// without side effects.
func (h *NotificationHandler) HandleMarkRead(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	notification, err := h.service.MarkRead(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Notification not found"})
		}
		log.Printf("Error marking notification %d read: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not mark notification read",
		})
	}
	return c.JSON(notification)
}
