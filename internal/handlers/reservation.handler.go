package handlers

import (
	"strings"

	"rentall/internal/app"
	reservationController "rentall/internal/controllers/reservations"
	. "rentall/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
)

type ReservationHandler struct {
	Handler
	reservations reservationController.ReservationControllerInterface
}

func NewReservationHandler(app *app.App, router fiber.Router) *ReservationHandler {
	return &ReservationHandler{
		reservations: app.ReservationController,
		Handler: Handler{
			log:    logger.New("handlers").File("reservation_handler"),
			router: router,
		},
	}
}

func (h *ReservationHandler) Register() {
	reservations := h.router.Group("/reservations")

	reservations.Post("/", h.create)
	reservations.Get("/", h.list)
	reservations.Get("/availability", h.checkAvailability)
	reservations.Get("/schedule", h.getSchedule)
	reservations.Get("/:id", h.get)
	reservations.Patch("/:id", h.update)
	reservations.Delete("/:id", h.cancel)
	reservations.Post("/:id/assign-vehicle", h.assignVehicle)
	reservations.Delete("/:id/assign-vehicle", h.unassignVehicle)
}

func (h *ReservationHandler) create(c *fiber.Ctx) error {
	var request reservationController.CreateReservationRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	reservation, err := h.reservations.Create(c.Context(), &request)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(reservation)
}

func (h *ReservationHandler) list(c *fiber.Ctx) error {
	request := reservationController.ListReservationsRequest{
		LocationCodeOut: c.Query("locationCodeOut"),
		DateFrom:        c.Query("dateFrom"),
		DateTo:          c.Query("dateTo"),
		Page:            c.QueryInt("page", 1),
		Limit:           c.QueryInt("limit", 0),
		SortBy:          c.Query("sortBy"),
		SortOrder:       c.Query("sortOrder"),
	}

	if id := c.QueryInt("customerId"); id > 0 {
		request.CustomerID = &id
	}
	if id := c.QueryInt("vehicleClassId"); id > 0 {
		request.VehicleClassID = &id
	}
	if id := c.QueryInt("vehicleId"); id > 0 {
		request.VehicleID = &id
	}
	if statuses := c.Query("status"); statuses != "" {
		for _, status := range strings.Split(statuses, ",") {
			request.Statuses = append(request.Statuses,
				ReservationStatus(strings.ToUpper(strings.TrimSpace(status))))
		}
	}

	result, err := h.reservations.List(c.Context(), &request)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(result)
}

func (h *ReservationHandler) get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid reservation id",
		})
	}

	reservation, err := h.reservations.Get(c.Context(), id)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(reservation)
}

func (h *ReservationHandler) update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid reservation id",
		})
	}

	var request reservationController.UpdateReservationRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	reservation, err := h.reservations.Update(c.Context(), id, &request)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(reservation)
}

func (h *ReservationHandler) cancel(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid reservation id",
		})
	}

	reservation, err := h.reservations.Cancel(c.Context(), id, c.Query("cancelledBy"))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(reservation)
}

type assignVehicleRequest struct {
	VehicleID  int    `json:"vehicleId"`
	AssignedBy string `json:"assignedBy,omitempty"`
}

func (h *ReservationHandler) assignVehicle(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid reservation id",
		})
	}

	var request assignVehicleRequest
	if err := c.BodyParser(&request); err != nil || request.VehicleID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "vehicleId is required",
		})
	}

	result, err := h.reservations.AssignVehicle(c.Context(), id, request.VehicleID, request.AssignedBy)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(result)
}

func (h *ReservationHandler) unassignVehicle(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid reservation id",
		})
	}

	reservation, err := h.reservations.UnassignVehicle(c.Context(), id, c.Query("unassignedBy"))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(reservation)
}

func (h *ReservationHandler) checkAvailability(c *fiber.Ctx) error {
	request := reservationController.AvailabilityRequest{
		VehicleClassID:  c.QueryInt("vehicleClassId"),
		LocationCodeOut: c.Query("locationCodeOut"),
		LocationCodeDue: c.Query("locationCodeDue"),
		DateOut:         c.Query("dateOut"),
		DateDue:         c.Query("dateDue"),
	}

	result, err := h.reservations.CheckAvailability(c.Context(), &request)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(result)
}

func (h *ReservationHandler) getSchedule(c *fiber.Ctx) error {
	request := reservationController.ScheduleRequest{
		LocationCode: c.Query("locationCode"),
		DateFrom:     c.Query("dateFrom"),
		DateTo:       c.Query("dateTo"),
	}
	if id := c.QueryInt("vehicleClassId"); id > 0 {
		request.VehicleClassID = &id
	}

	result, err := h.reservations.GetSchedule(c.Context(), &request)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(result)
}
