package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/autoassist/auto-assist-api/internal/dto"
	"github.com/autoassist/auto-assist-api/internal/services"
)

// DataHandler serves the vehicle brand and color catalogs used by clients to
// populate form selects.
type DataHandler struct {
	dataService *services.DataService
}

func NewDataHandler(dataService *services.DataService) *DataHandler {
	return &DataHandler{dataService: dataService}
}

func (h *DataHandler) Brands(c *fiber.Ctx) error {
	brands, err := h.dataService.Brands()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.SuccessResponse{Message: "data found", Data: brands})
}

func (h *DataHandler) Colors(c *fiber.Ctx) error {
	colors, err := h.dataService.Colors()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.SuccessResponse{Message: "data found", Data: colors})
}
