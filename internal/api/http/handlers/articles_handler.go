package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/console-service/internal/api/dto"
	"github.com/spec-kit/console-service/internal/auth"
	"github.com/spec-kit/console-service/internal/domain"
	"github.com/spec-kit/console-service/internal/service"
	apperrors "github.com/spec-kit/console-service/pkg/util"
)

// ArticlesHandler exposes the content workflow operations.
type ArticlesHandler struct {
	service *service.ArticleService
}

// NewArticlesHandler constructs handler.
func NewArticlesHandler(articleService *service.ArticleService) *ArticlesHandler {
	return &ArticlesHandler{service: articleService}
}

// CreateArticle POST /api/createArticle.
func (h *ArticlesHandler) CreateArticle(c *fiber.Ctx) error {
	caller, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.CreateArticleRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Title == "" {
		return apperrors.NewValidationError("title required", nil)
	}

	result, err := h.service.CreateArticle(c.UserContext(), caller, req.Title, req.Body)
	if err != nil {
		return err
	}
	return c.JSON(dto.ResultResponse{Result: result})
}

// UpdateArticle POST /api/updateArticle.
func (h *ArticlesHandler) UpdateArticle(c *fiber.Ctx) error {
	caller, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.UpdateArticleRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ID == "" || req.Title == "" {
		return apperrors.NewValidationError("id, title required", nil)
	}
	status, err := domain.ParseArticleStatus(req.Status)
	if err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	result, err := h.service.UpdateArticle(c.UserContext(), caller, req.ID, req.Title, req.Body, status)
	if err != nil {
		return err
	}
	return c.JSON(dto.ResultResponse{Result: result})
}

// DeleteArticle POST /api/deleteArticle.
func (h *ArticlesHandler) DeleteArticle(c *fiber.Ctx) error {
	caller, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.DeleteArticleRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ID == "" {
		return apperrors.NewValidationError("id required", nil)
	}

	result, err := h.service.DeleteArticle(c.UserContext(), caller, req.ID)
	if err != nil {
		return err
	}
	return c.JSON(dto.ResultResponse{Result: result})
}
