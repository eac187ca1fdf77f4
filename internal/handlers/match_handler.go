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

// MatchHandler handles HTTP requests for matches.
type MatchHandler struct {
	service  *services.MatchService
	validate *validator.Validate
}

// NewMatchHandler creates a new MatchHandler.
func NewMatchHandler(service *services.MatchService) *MatchHandler {
	return &MatchHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the match routes.
func (h *MatchHandler) RegisterRoutes(router fiber.Router) {
	matchRoutes := router.Group("/matches")
	matchRoutes.Get("/", h.HandleGetMatches)
	matchRoutes.Get("/:id", h.HandleGetMatchByID)
	matchRoutes.Post("/", h.HandleCreateMatch)
}

// HandleGetMatches retrieves all matches, enriched with the resolved
// team and scouting club records.
func (h *MatchHandler) HandleGetMatches(c *fiber.Ctx) error {
	matches, err := h.service.GetAllMatches()
	if err != nil {
		log.Printf("Error getting all matches: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve matches",
		})
	}
	return c.JSON(matches)
}

// HandleGetMatchByID retrieves a single enriched match by its id.
func (h *MatchHandler) HandleGetMatchByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	match, err := h.service.GetMatchByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Match not found"})
		}
		log.Printf("Error getting match %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve match",
		})
	}
	return c.JSON(match)
}

// HandleCreateMatch creates a new match.
func (h *MatchHandler) HandleCreateMatch(c *fiber.Ctx) error {
	var match models.Match
	if err := c.BodyParser(&match); err != nil {
		log.Printf("Error parsing match request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(match); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	if err := h.service.CreateMatch(&match); err != nil {
		log.Printf("Error creating match: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create match",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(match)
}
