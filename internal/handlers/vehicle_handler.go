package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/autoassist/auto-assist-api/internal/dto"
	"github.com/autoassist/auto-assist-api/internal/models"
	"github.com/autoassist/auto-assist-api/internal/ownership"
	"github.com/autoassist/auto-assist-api/internal/services"
	"github.com/autoassist/auto-assist-api/internal/storage"
)

type VehicleHandler struct {
	vehicleService *services.VehicleService
	images         storage.ImageStore
}

func NewVehicleHandler(vehicleService *services.VehicleService, images storage.ImageStore) *VehicleHandler {
	return &VehicleHandler{vehicleService: vehicleService, images: images}
}

func (h *VehicleHandler) List(c *fiber.Ctx) error {
	userID, err := ownership.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	page, limit := pageParams(c)
	filters := services.VehicleFilters{
		Brand:        c.Query("brand"),
		Model:        c.Query("model"),
		Color:        c.Query("color"),
		LicensePlate: c.Query("licensePlate"),
		Search:       c.Query("search"),
	}

	vehicles, total, totalPages, err := h.vehicleService.List(userID, filters, page, limit)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(dto.SuccessResponse{
		Message: "vehicles found",
		Data: dto.VehicleListData{
			Vehicles:   h.toResponses(vehicles),
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	})
}

func (h *VehicleHandler) GetByID(c *fiber.Ctx) error {
	userID, err := ownership.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid vehicle id")
	}

	vehicle, err := h.vehicleService.GetByID(userID, id)
	if err != nil {
		return fail(c, err)
	}

	resp := h.toResponse(vehicle)
	return c.JSON(dto.SuccessResponse{Message: "vehicle found", Data: resp})
}

// ListByUser answers with an explicit 403 when the requested user id is not
// the caller's own, unlike the per-id lookups which read as 404.
func (h *VehicleHandler) ListByUser(c *fiber.Ctx) error {
	userID, err := ownership.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	requested, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}
	if requested != userID {
		return fail(c, services.ErrForbidden)
	}

	page, limit := pageParams(c)
	vehicles, total, totalPages, err := h.vehicleService.List(userID, services.VehicleFilters{}, page, limit)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(dto.SuccessResponse{
		Message: "vehicles found",
		Data: dto.VehicleListData{
			Vehicles:   h.toResponses(vehicles),
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	})
}

func (h *VehicleHandler) Create(c *fiber.Ctx) error {
	userID, err := ownership.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	req, upload, cleanup, err := parseVehicleForm(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	defer cleanup()

	vehicle, err := h.vehicleService.Create(userID, req, upload)
	if err != nil {
		return fail(c, err)
	}

	resp := h.toResponse(vehicle)
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{
		Message: "vehicle created successfully",
		Data:    resp,
	})
}

func (h *VehicleHandler) Update(c *fiber.Ctx) error {
	userID, err := ownership.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid vehicle id")
	}

	req, upload, cleanup, err := parseVehicleForm(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	defer cleanup()

	vehicle, err := h.vehicleService.Update(userID, id, req, upload)
	if err != nil {
		return fail(c, err)
	}

	resp := h.toResponse(vehicle)
	return c.JSON(dto.SuccessResponse{Message: "vehicle updated successfully", Data: resp})
}

func (h *VehicleHandler) Delete(c *fiber.Ctx) error {
	userID, err := ownership.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid vehicle id")
	}

	if err := h.vehicleService.Delete(userID, id); err != nil {
		return fail(c, err)
	}

	return c.JSON(dto.SuccessResponse{Message: "vehicle deleted successfully"})
}

func (h *VehicleHandler) DeleteImage(c *fiber.Ctx) error {
	userID, err := ownership.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid vehicle id")
	}

	if err := h.vehicleService.DetachImage(userID, id); err != nil {
		return fail(c, err)
	}

	return c.JSON(dto.SuccessResponse{Message: "vehicle image deleted successfully"})
}

// parseVehicleForm reads the multipart fields and the optional image part.
// The returned cleanup closes the image file handle and is safe to call
// unconditionally.
func parseVehicleForm(c *fiber.Ctx) (*dto.VehicleRequest, *storage.Upload, func(), error) {
	noop := func() {}

	mileage := 0
	if raw := c.FormValue("mileage"); raw != "" {
		var err error
		mileage, err = strconv.Atoi(raw)
		if err != nil {
			return nil, nil, noop, &services.ValidationError{Msg: "mileage must be a number"}
		}
	}

	req := &dto.VehicleRequest{
		Name:         c.FormValue("name"),
		Brand:        c.FormValue("brand"),
		Model:        c.FormValue("model"),
		Version:      c.FormValue("version"),
		Color:        c.FormValue("color"),
		LicensePlate: c.FormValue("licensePlate"),
		Mileage:      mileage,
	}

	fileHeader, err := c.FormFile("image")
	if err != nil || fileHeader == nil {
		return req, nil, noop, nil
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, nil, noop, &services.ValidationError{Msg: "failed to read image upload"}
	}

	upload := &storage.Upload{
		Reader:      f,
		Size:        fileHeader.Size,
		ContentType: fileHeader.Header.Get("Content-Type"),
	}
	return req, upload, func() { f.Close() }, nil
}

func (h *VehicleHandler) toResponse(v *models.Vehicle) dto.VehicleResponse {
	var imageURL *string
	if v.Image != nil {
		url := h.images.URL(*v.Image)
		imageURL = &url
	}
	return dto.VehicleResponse{
		ID:           v.ID,
		UserID:       v.UserID,
		Name:         v.Name,
		Brand:        v.Brand,
		Model:        v.Model,
		Version:      v.Version,
		Color:        v.Color,
		LicensePlate: v.LicensePlate,
		Mileage:      v.Mileage,
		ImageURL:     imageURL,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func (h *VehicleHandler) toResponses(vehicles []models.Vehicle) []dto.VehicleResponse {
	out := make([]dto.VehicleResponse, 0, len(vehicles))
	for i := range vehicles {
		out = append(out, h.toResponse(&vehicles[i]))
	}
	return out
}

// pageParams applies the defaults page=1, limit=10.
func pageParams(c *fiber.Ctx) (int, int) {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return page, limit
}
