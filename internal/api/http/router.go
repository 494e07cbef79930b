package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/console-service/internal/api/http/handlers"
	"github.com/spec-kit/console-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Accounts       *handlers.AccountsHandler
	Articles       *handlers.ArticlesHandler
	Flags          *handlers.FlagsHandler
	BugReports     *handlers.BugReportsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Each /api route is one RPC operation;
// all of them sit behind the bearer middleware.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/apiSpec", ServeAPISpec)

	app.Post("/auth/login", cfg.Auth.Login)

	api := app.Group("/api", cfg.AuthMiddleware.Handle)
	api.Post("/createUser", cfg.Accounts.CreateUser)
	api.Post("/updateUserRole", cfg.Accounts.UpdateUserRole)
	api.Post("/deleteUser", cfg.Accounts.DeleteUser)

	api.Post("/createArticle", cfg.Articles.CreateArticle)
	api.Post("/updateArticle", cfg.Articles.UpdateArticle)
	api.Post("/deleteArticle", cfg.Articles.DeleteArticle)

	api.Post("/createFeatureFlag", cfg.Flags.CreateFeatureFlag)
	api.Post("/toggleFeatureFlag", cfg.Flags.ToggleFeatureFlag)

	api.Post("/createBugReport", cfg.BugReports.CreateBugReport)
}
