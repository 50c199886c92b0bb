package handler

import (
	"errors"

	"github.com/Royal-dudy99/SwiftBooks18/internal/auth/dto"
	"github.com/Royal-dudy99/SwiftBooks18/internal/auth/service"
	apperrors "github.com/Royal-dudy99/SwiftBooks18/internal/errors"
	"github.com/Royal-dudy99/SwiftBooks18/pkg/constant"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	userService *service.UserService
}

func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid input"})
	}

	resp, err := h.userService.Register(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid input"})
	}

	resp, err := h.userService.Login(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// ForgotPassword answers the same 200 whether or not the account exists,
// so the endpoint cannot be used to enumerate emails.
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var input dto.ForgotPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid input"})
	}

	if err := h.userService.RequestPasswordReset(c.Context(), input); err != nil {
		var fieldErrs apperrors.FieldErrors
		if errors.As(err, &fieldErrs) {
			return respondError(c, err)
		}
		// Infrastructure failures stay behind the generic response too.
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "If that email is registered, a reset link has been sent",
	})
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var input dto.ResetPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid input"})
	}

	resp, err := h.userService.ResetPassword(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	userID, _ := c.Locals(constant.LocalsUserID).(string)

	user, err := h.userService.Profile(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"user": user})
}

// respondError maps service errors onto the HTTP contract. Anything not
// in the taxonomy becomes a generic 500 with no internals leaked.
func respondError(c *fiber.Ctx, err error) error {
	var fieldErrs apperrors.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "validation errors",
			"errors":  fieldErrs,
		})
	case errors.Is(err, apperrors.ErrEmailAlreadyInUse):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidOrExpiredToken):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error"})
	}
}
