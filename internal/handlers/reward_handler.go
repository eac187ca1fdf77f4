package handlers

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/FORIFOR/fanscout-app/internal/models"
	"github.com/FORIFOR/fanscout-app/internal/repositories"
	"github.com/FORIFOR/fanscout-app/internal/services"
)

// RewardHandler handles HTTP requests for rewards.
type RewardHandler struct {
	service  *services.RewardService
	validate *validator.Validate
}

// NewRewardHandler creates a new RewardHandler.
func NewRewardHandler(service *services.RewardService) *RewardHandler {
	return &RewardHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the reward routes.
func (h *RewardHandler) RegisterRoutes(router fiber.Router) {
	rewardRoutes := router.Group("/rewards")
	rewardRoutes.Get("/", h.HandleGetRewards)
	rewardRoutes.Post("/", h.HandleCreateReward)
	rewardRoutes.Post("/:id/redeem", h.HandleRedeemReward)
}

// HandleGetRewards lists a user's rewards.
func (h *RewardHandler) HandleGetRewards(c *fiber.Ctx) error {
	userID, ok, err := parseUintQuery(c, "userId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "userId query parameter is required"})
	}

	rewards, err := h.service.GetRewardsByUserID(userID)
	if err != nil {
		log.Printf("Error listing rewards for user %d: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve rewards",
		})
	}
	return c.JSON(rewards)
}

// HandleCreateReward creates a new reward, which notifies the user.
func (h *RewardHandler) HandleCreateReward(c *fiber.Ctx) error {
	var reward models.Reward
	if err := c.BodyParser(&reward); err != nil {
		log.Printf("Error parsing reward request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(reward); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	if err := h.service.CreateReward(&reward); err != nil {
		log.Printf("Error creating reward: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create reward",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(reward)
}

// HandleRedeemReward redeems a reward, which notifies the user.
func (h *RewardHandler) HandleRedeemReward(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	reward, err := h.service.RedeemReward(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Reward not found"})
		}
		log.Printf("Error redeeming reward %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not redeem reward",
		})
	}
	return c.JSON(reward)
}
