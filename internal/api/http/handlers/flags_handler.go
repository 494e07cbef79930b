package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/console-service/internal/api/dto"
	"github.com/spec-kit/console-service/internal/auth"
	"github.com/spec-kit/console-service/internal/service"
	apperrors "github.com/spec-kit/console-service/pkg/util"
)

// FlagsHandler exposes the feature flag registry operations.
type FlagsHandler struct {
	service *service.FlagService
}

// NewFlagsHandler constructs handler.
func NewFlagsHandler(flagService *service.FlagService) *FlagsHandler {
	return &FlagsHandler{service: flagService}
}

// CreateFeatureFlag POST /api/createFeatureFlag.
func (h *FlagsHandler) CreateFeatureFlag(c *fiber.Ctx) error {
	caller, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.CreateFeatureFlagRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" {
		return apperrors.NewValidationError("name required", nil)
	}

	result, err := h.service.CreateFeatureFlag(c.UserContext(), caller, req.Name, req.Description)
	if err != nil {
		return err
	}
	return c.JSON(dto.ResultResponse{Result: result})
}

// ToggleFeatureFlag POST /api/toggleFeatureFlag.
func (h *FlagsHandler) ToggleFeatureFlag(c *fiber.Ctx) error {
	caller, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.ToggleFeatureFlagRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ID == "" || req.Enabled == nil {
		return apperrors.NewValidationError("id, enabled required", nil)
	}

	result, err := h.service.ToggleFeatureFlag(c.UserContext(), caller, req.ID, *req.Enabled)
	if err != nil {
		return err
	}
	return c.JSON(dto.ResultResponse{Result: result})
}
