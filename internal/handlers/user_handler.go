package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/autoassist/auto-assist-api/internal/dto"
	"github.com/autoassist/auto-assist-api/internal/ownership"
	"github.com/autoassist/auto-assist-api/internal/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	resp, err := h.userService.Register(&req)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{
		Message: "user registered successfully",
		Data:    resp,
	})
}

func (h *UserHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	resp, err := h.userService.Login(&req)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(dto.SuccessResponse{Message: "login successful", Data: resp})
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.userService.List()
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(dto.SuccessResponse{Message: "users found", Data: users})
}

func (h *UserHandler) Me(c *fiber.Ctx) error {
	userID, err := ownership.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	user, err := h.userService.GetByID(userID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(dto.SuccessResponse{Message: "user found", Data: user})
}

func (h *UserHandler) Refresh(c *fiber.Ctx) error {
	userID, err := ownership.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	resp, err := h.userService.Refresh(userID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(dto.SuccessResponse{Message: "token refreshed", Data: resp})
}

func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	user, err := h.userService.GetByID(id)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(dto.SuccessResponse{Message: "user found", Data: user})
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	userID, err := ownership.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.userService.Update(userID, id, &req); err != nil {
		return fail(c, err)
	}

	return c.JSON(dto.SuccessResponse{Message: "user updated successfully"})
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	userID, err := ownership.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	if err := h.userService.Delete(userID, id); err != nil {
		return fail(c, err)
	}

	return c.JSON(dto.SuccessResponse{Message: "user deleted successfully"})
}
