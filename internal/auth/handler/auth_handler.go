package handler

import (
	"github.com/Rosanadeaibes/my-notes/internal/apperror"
	"github.com/Rosanadeaibes/my-notes/internal/auth/dto"
	"github.com/Rosanadeaibes/my-notes/internal/auth/service"
	"github.com/Rosanadeaibes/my-notes/internal/response"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	userService *service.UserService
}

func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var input dto.SignupInput
	if err := c.BodyParser(&input); err != nil {
		return apperror.ErrInvalidInput
	}

	user, err := h.userService.SignUp(c.Context(), input)
	if err != nil {
		return err
	}

	return response.Success(c, fiber.StatusCreated, "User created", dto.SignupOutput{
		ID:    user.ID,
		Email: user.Email,
	})
}

func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var input dto.SigninInput
	if err := c.BodyParser(&input); err != nil {
		return apperror.ErrInvalidInput
	}

	out, err := h.userService.SignIn(c.Context(), input)
	if err != nil {
		return err
	}

	return response.Success(c, fiber.StatusOK, "Sign in successful", out)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var input dto.RefreshInput
	if err := c.BodyParser(&input); err != nil {
		return apperror.ErrInvalidInput
	}

	out, err := h.userService.Refresh(c.Context(), input)
	if err != nil {
		return err
	}

	return response.Success(c, fiber.StatusOK, "Access token refreshed", out)
}
