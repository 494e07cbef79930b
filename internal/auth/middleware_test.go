package auth

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/console-service/internal/domain"
	apperrors "github.com/spec-kit/console-service/pkg/util"
)

func newTestApp(tokens *TokenManager) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"error": domainErr.Code})
		},
	})
	mw := NewMiddleware(tokens)
	app.Get("/whoami", mw.Handle, func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return fiber.NewError(http.StatusInternalServerError, "no principal")
		}
		return c.JSON(fiber.Map{"id": principal.ID, "email": principal.Email, "role": principal.Role})
	})
	return app
}

func TestMiddlewareMaterializesPrincipal(t *testing.T) {
	tokens := NewTokenManager("test-secret", 60)
	app := newTestApp(tokens)

	token, _, err := tokens.GenerateToken(domain.Principal{ID: "u1", Email: "u1@example.com", Role: domain.RoleDeveloper})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"id":"u1"`)
	assert.Contains(t, string(body), `"role":"developer"`)
}

func TestMiddlewareRejectsMissingHeader(t *testing.T) {
	app := newTestApp(NewTokenManager("test-secret", 60))

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareRejectsForeignToken(t *testing.T) {
	app := newTestApp(NewTokenManager("test-secret", 60))

	other := NewTokenManager("other-secret", 60)
	token, _, err := other.GenerateToken(domain.Principal{ID: "u1", Email: "u1@example.com", Role: domain.RoleAdmin})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareRejectsUnknownRoleClaim(t *testing.T) {
	tokens := NewTokenManager("test-secret", 60)
	app := newTestApp(tokens)

	token, _, err := tokens.GenerateToken(domain.Principal{ID: "u1", Email: "u1@example.com", Role: domain.Role("superuser")})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
