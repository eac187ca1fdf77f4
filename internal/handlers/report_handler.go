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

// ReportHandler handles HTTP requests for scouting reports.
type ReportHandler struct {
	service  *services.ReportService
	validate *validator.Validate
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the scouting report routes.
func (h *ReportHandler) RegisterRoutes(router fiber.Router) {
	reportRoutes := router.Group("/scouting-reports")
	reportRoutes.Get("/", h.HandleGetReports)
	reportRoutes.Get("/:id", h.HandleGetReportByID)
	reportRoutes.Post("/", h.HandleCreateReport)
	reportRoutes.Post("/:id/like", h.HandleLikeReport)
	reportRoutes.Post("/:id/photo", h.HandleAttachPhoto)
}

// HandleGetReports lists reports, optionally filtered by userId,
// matchId or clubId. The first filter present wins.
func (h *ReportHandler) HandleGetReports(c *fiber.Ctx) error {
	var (
		reports []models.ScoutingReport
		err     error
	)
	if userID, ok, perr := parseUintQuery(c, "userId"); perr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": perr.Error()})
	} else if ok {
		reports, err = h.service.GetReportsByUserID(userID)
	} else if matchID, ok, perr := parseUintQuery(c, "matchId"); perr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": perr.Error()})
	} else if ok {
		reports, err = h.service.GetReportsByMatchID(matchID)
	} else if clubID, ok, perr := parseUintQuery(c, "clubId"); perr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": perr.Error()})
	} else if ok {
		reports, err = h.service.GetReportsByClubID(clubID)
	} else {
		reports, err = h.service.GetAllReports()
	}
	if err != nil {
		log.Printf("Error listing scouting reports: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve scouting reports",
		})
	}
	return c.JSON(reports)
}

// HandleGetReportByID retrieves a single report by its id.
func (h *ReportHandler) HandleGetReportByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	report, err := h.service.GetReportByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Scouting report not found"})
		}
		log.Printf("Error getting scouting report %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve scouting report",
		})
	}
	return c.JSON(report)
}

// HandleCreateReport creates a new scouting report.
func (h *ReportHandler) HandleCreateReport(c *fiber.Ctx) error {
	var report models.ScoutingReport
	if err := c.BodyParser(&report); err != nil {
		log.Printf("Error parsing scouting report request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(report); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	if err := h.service.CreateReport(&report); err != nil {
		if errors.Is(err, services.ErrClubNotScouting) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"error":   err.Error(),
			})
		}
		log.Printf("Error creating scouting report: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create scouting report",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(report)
}

// LikeRequest represents the request body for liking a report. Both
// fields are optional; the like is attributed as given without checking
// the admin against club membership.
type LikeRequest struct {
	AdminID  *uint   `json:"adminId"`
	Feedback *string `json:"feedback"`
}

// HandleLikeReport marks a report as liked, awarding points to its
// author and notifying them.
func (h *ReportHandler) HandleLikeReport(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	var req LikeRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			log.Printf("Error parsing like request body: %v", err)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid request body",
				"error":   err.Error(),
			})
		}
	}

	report, err := h.service.LikeReport(id, req.AdminID, req.Feedback)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Scouting report not found"})
		}
		log.Printf("Error liking scouting report %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not like scouting report",
		})
	}
	return c.JSON(report)
}

// PhotoRequest represents the request body for attaching a photo.
type PhotoRequest struct {
	PhotoURL string `json:"photoUrl" validate:"required,max=500"`
}

// HandleAttachPhoto records the photo URL for a report. Upload and disk
// persistence happen outside the core; only the URL is stored here.
func (h *ReportHandler) HandleAttachPhoto(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	var req PhotoRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing photo request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	report, err := h.service.AttachPhoto(id, req.PhotoURL)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Scouting report not found"})
		}
		log.Printf("Error attaching photo to scouting report %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not attach photo",
		})
	}
	return c.JSON(report)
}
