package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/console-service/internal/api/dto"
	"github.com/spec-kit/console-service/internal/auth"
	"github.com/spec-kit/console-service/internal/domain"
	apperrors "github.com/spec-kit/console-service/pkg/util"
)

// Authenticator verifies credentials at the transport boundary. The
// operation handlers never see it; they receive only the resulting
// principal.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (domain.Principal, error)
}

// AuthHandler mints bearer tokens for authenticated principals.
type AuthHandler struct {
	authenticator Authenticator
	tokens        *auth.TokenManager
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authenticator Authenticator, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{authenticator: authenticator, tokens: tokens}
}

// Login POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}

	principal, err := h.authenticator.Authenticate(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return apperrors.NewUnauthorized("invalid credentials")
	}

	token, exp, err := h.tokens.GenerateToken(principal)
	if err != nil {
		return apperrors.NewInternalError(err)
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"token":      token,
			"expires_at": exp,
			"principal": fiber.Map{
				"id":    principal.ID,
				"email": principal.Email,
				"role":  principal.Role,
			},
		},
	})
}
