package handlers

import (
	"rentall/internal/app"
	assignmentController "rentall/internal/controllers/assignment"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
)

type AnalyticsHandler struct {
	Handler
	assignments assignmentController.AssignmentControllerInterface
}

func NewAnalyticsHandler(app *app.App, router fiber.Router) *AnalyticsHandler {
	return &AnalyticsHandler{
		assignments: app.AssignmentController,
		Handler: Handler{
			log:    logger.New("handlers").File("analytics_handler"),
			router: router,
		},
	}
}

func (h *AnalyticsHandler) Register() {
	analytics := h.router.Group("/analytics")

	analytics.Post("/ai/auto-assign", h.autoAssign)
	analytics.Get("/ai/recommendations/:reservationId", h.recommendations)
	analytics.Get("/fleet-utilization", h.fleetUtilization)
}

func (h *AnalyticsHandler) autoAssign(c *fiber.Ctx) error {
	result, err := h.assignments.AutoAssign(c.Context(), c.Query("locationCode"))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(result)
}

func (h *AnalyticsHandler) recommendations(c *fiber.Ctx) error {
	reservationID, err := c.ParamsInt("reservationId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid reservation id",
		})
	}

	result, err := h.assignments.Recommendations(c.Context(), reservationID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(result)
}

func (h *AnalyticsHandler) fleetUtilization(c *fiber.Ctx) error {
	request := assignmentController.UtilizationRequest{
		LocationCode: c.Query("locationCode"),
		DateFrom:     c.Query("dateFrom"),
		DateTo:       c.Query("dateTo"),
	}

	result, err := h.assignments.FleetUtilization(c.Context(), &request)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(result)
}
