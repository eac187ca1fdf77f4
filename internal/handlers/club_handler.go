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

// ClubHandler handles HTTP requests for clubs.
type ClubHandler struct {
	service  *services.ClubService
	validate *validator.Validate
}

// NewClubHandler creates a new ClubHandler.
func NewClubHandler(service *services.ClubService) *ClubHandler {
	return &ClubHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the club routes.
func (h *ClubHandler) RegisterRoutes(router fiber.Router) {
	clubRoutes := router.Group("/clubs")
	clubRoutes.Get("/", h.HandleGetClubs)
	clubRoutes.Get("/:id", h.HandleGetClubByID)
	clubRoutes.Post("/", h.HandleCreateClub)
}

// HandleGetClubs retrieves all clubs.
func (h *ClubHandler) HandleGetClubs(c *fiber.Ctx) error {
	clubs, err := h.service.GetAllClubs()
	if err != nil {
		log.Printf("Error getting all clubs: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve clubs",
		})
	}
	return c.JSON(clubs)
}

// HandleGetClubByID retrieves a single club by its id.
func (h *ClubHandler) HandleGetClubByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	club, err := h.service.GetClubByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Club not found"})
		}
		log.Printf("Error getting club %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve club",
		})
	}
	return c.JSON(club)
}

// HandleCreateClub creates a new club.
func (h *ClubHandler) HandleCreateClub(c *fiber.Ctx) error {
	var club models.Club
	if err := c.BodyParser(&club); err != nil {
		log.Printf("Error parsing club request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(club); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	if err := h.service.CreateClub(&club); err != nil {
		log.Printf("Error creating club: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create club",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(club)
}
