package handlers

import (
	"errors"

	"rentall/internal/app"
	reservationController "rentall/internal/controllers/reservations"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	log    logger.Logger
	router fiber.Router
}

func Router(router fiber.Router, app *app.App) error {
	api := router.Group("/api")

	HealthHandler(api, app.Config)
	NewReservationHandler(app, api).Register()
	NewAnalyticsHandler(app, api).Register()

	return nil
}

// errorResponse maps engine failures onto response codes. Unrecognized errors
// surface as 500 without leaking internals.
func errorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, reservationController.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, reservationController.ErrInvalidDateRange),
		errors.Is(err, reservationController.ErrPastDate),
		errors.Is(err, reservationController.ErrClassMismatch),
		errors.Is(err, reservationController.ErrNoVehicleAssigned):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, reservationController.ErrTerminalState):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
}
