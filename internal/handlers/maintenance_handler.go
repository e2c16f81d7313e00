package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/autoassist/auto-assist-api/internal/dto"
	"github.com/autoassist/auto-assist-api/internal/ownership"
	"github.com/autoassist/auto-assist-api/internal/services"
)

type MaintenanceHandler struct {
	maintenanceService *services.MaintenanceService
}

func NewMaintenanceHandler(maintenanceService *services.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{maintenanceService: maintenanceService}
}

func (h *MaintenanceHandler) List(c *fiber.Ctx) error {
	userID, err := ownership.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	page, limit := pageParams(c)
	filters := services.MaintenanceFilters{
		VehicleID: c.Query("vehicleId"),
		Search:    c.Query("search"),
	}

	reminders, total, totalPages, err := h.maintenanceService.List(userID, filters, page, limit)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(dto.SuccessResponse{
		Message: "maintenance reminders found",
		Data: dto.MaintenanceListData{
			Reminders:  reminders,
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	})
}

func (h *MaintenanceHandler) GetByID(c *fiber.Ctx) error {
	userID, err := ownership.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid maintenance reminder id")
	}

	reminder, err := h.maintenanceService.GetByID(userID, id)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(dto.SuccessResponse{Message: "maintenance reminder found", Data: reminder})
}

func (h *MaintenanceHandler) Create(c *fiber.Ctx) error {
	userID, err := ownership.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.MaintenanceRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	reminder, err := h.maintenanceService.Create(userID, &req)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{
		Message: "maintenance reminder created successfully",
		Data:    fiber.Map{"id": reminder.ID},
	})
}

func (h *MaintenanceHandler) Update(c *fiber.Ctx) error {
	userID, err := ownership.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid maintenance reminder id")
	}

	var req dto.MaintenanceRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.maintenanceService.Update(userID, id, &req); err != nil {
		return fail(c, err)
	}

	return c.JSON(dto.SuccessResponse{Message: "maintenance reminder updated successfully"})
}

func (h *MaintenanceHandler) Delete(c *fiber.Ctx) error {
	userID, err := ownership.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid maintenance reminder id")
	}

	if err := h.maintenanceService.Delete(userID, id); err != nil {
		return fail(c, err)
	}

	return c.JSON(dto.SuccessResponse{Message: "maintenance reminder deleted successfully"})
}
