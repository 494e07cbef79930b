package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/console-service/internal/api/dto"
	"github.com/spec-kit/console-service/internal/auth"
	"github.com/spec-kit/console-service/internal/domain"
	"github.com/spec-kit/console-service/internal/service"
	apperrors "github.com/spec-kit/console-service/pkg/util"
)

// AccountsHandler exposes the account lifecycle operations.
type AccountsHandler struct {
	service *service.AccountService
}

// NewAccountsHandler constructs handler.
func NewAccountsHandler(accountService *service.AccountService) *AccountsHandler {
	return &AccountsHandler{service: accountService}
}

// CreateUser POST /api/createUser.
func (h *AccountsHandler) CreateUser(c *fiber.Ctx) error {
	caller, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" || req.Role == "" {
		return apperrors.NewValidationError("email, password, role required", nil)
	}
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	result, err := h.service.CreateUser(c.UserContext(), caller, req.Email, req.Password, role)
	if err != nil {
		return err
	}
	return c.JSON(dto.ResultResponse{Result: result})
}

// UpdateUserRole POST /api/updateUserRole.
func (h *AccountsHandler) UpdateUserRole(c *fiber.Ctx) error {
	caller, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.UpdateUserRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.UID == "" || req.Role == "" {
		return apperrors.NewValidationError("uid, role required", nil)
	}
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	result, err := h.service.UpdateUserRole(c.UserContext(), caller, req.UID, role)
	if err != nil {
		return err
	}
	return c.JSON(dto.ResultResponse{Result: result})
}

// DeleteUser POST /api/deleteUser.
func (h *AccountsHandler) DeleteUser(c *fiber.Ctx) error {
	caller, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.DeleteUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.UID == "" {
		return apperrors.NewValidationError("uid required", nil)
	}

	result, err := h.service.DeleteUser(c.UserContext(), caller, req.UID)
	if err != nil {
		return err
	}
	return c.JSON(dto.ResultResponse{Result: result})
}
