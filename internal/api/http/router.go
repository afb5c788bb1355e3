package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/account-service/internal/api/http/handlers"
	"github.com/spec-kit/account-service/internal/auth"
	"github.com/spec-kit/account-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Admin          *handlers.AdminHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/signup", cfg.Auth.SignUp)
	app.Post("/login", cfg.Auth.Login)
	app.Get("/validate", cfg.Auth.Validate)

	app.Get("/role", cfg.AuthMiddleware.RequireAuth(), cfg.Users.GetRole)
	app.Get("/users/:id", cfg.AuthMiddleware.RequireSelf("id"), cfg.Users.GetProfile)
	app.Patch("/users/:id", cfg.AuthMiddleware.RequireSelf("id"), cfg.Users.PatchProfile)

	admin := app.Group("/admin", cfg.AuthMiddleware.RequireRole(domain.RoleAdmin))
	admin.Get("/users", cfg.Admin.ListUsers)
	admin.Patch("/users/:id", cfg.Admin.PatchUser)
	admin.Get("/activity", cfg.Admin.RecentActivity)
}
