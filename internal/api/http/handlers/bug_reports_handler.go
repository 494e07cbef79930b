package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/console-service/internal/api/dto"
	"github.com/spec-kit/console-service/internal/auth"
	"github.com/spec-kit/console-service/internal/service"
	apperrors "github.com/spec-kit/console-service/pkg/util"
)

// BugReportsHandler exposes the intake operation.
type BugReportsHandler struct {
	service *service.BugReportService
}

// NewBugReportsHandler constructs handler.
func NewBugReportsHandler(bugReportService *service.BugReportService) *BugReportsHandler {
	return &BugReportsHandler{service: bugReportService}
}

// CreateBugReport POST /api/createBugReport.
func (h *BugReportsHandler) CreateBugReport(c *fiber.Ctx) error {
	caller, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.CreateBugReportRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Description == "" {
		return apperrors.NewValidationError("description required", nil)
	}

	result, err := h.service.CreateBugReport(c.UserContext(), caller, req.Description, req.StepsToReproduce)
	if err != nil {
		return err
	}
	return c.JSON(dto.ResultResponse{Result: result})
}
