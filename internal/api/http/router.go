package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/venue-service/internal/api/http/handlers"
	"github.com/spec-kit/venue-service/internal/auth"
	"github.com/spec-kit/venue-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Staff          *handlers.StaffHandler
	Venues         *handlers.VenuesHandler
	Menu           *handlers.MenuHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Page routes resolve the session
// optionally and run through the routing gate; API routes require a valid
// session and a role guard, with services re-checking authorization on
// every privileged operation.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	// Page routes.
	optional := cfg.AuthMiddleware.Optional
	app.Get("/", optional, auth.GatePage(auth.PathGroupRoot), cfg.Auth.Page)
	app.Get("/login", optional, auth.GatePage(auth.PathGroupLogin), cfg.Auth.Page)
	app.Get("/menu-placeholder", optional, cfg.Auth.PublicMenu)
	app.Get("/admin/*", optional, auth.GatePage(auth.PathGroupAdmin), cfg.Auth.Page)
	app.Get("/manager/*", optional, auth.GatePage(auth.PathGroupManager), cfg.Auth.Page)

	api := app.Group("/api/v1")
	api.Post("/auth/login", cfg.Auth.Login)

	protected := api.Group("", cfg.AuthMiddleware.Handle)
	protected.Get("/auth/me", cfg.Auth.Me)

	adminOnly := auth.RequireAdmin()
	management := auth.RequireRole(domain.RoleAdmin, domain.RoleManager)

	protected.Post("/staff", adminOnly, cfg.Staff.CreateStaff)
	protected.Delete("/staff/:id", adminOnly, cfg.Staff.DeleteStaff)
	protected.Post("/staff/bartenders", auth.RequireRole(domain.RoleManager), cfg.Staff.CreateBartender)
	protected.Post("/staff/:id/disable", auth.RequireRole(domain.RoleManager), cfg.Staff.DisableStaff)

	protected.Get("/venues", adminOnly, cfg.Venues.List)
	protected.Post("/venues", adminOnly, cfg.Venues.Create)
	protected.Get("/venues/:id", management, cfg.Venues.Get)
	protected.Put("/venues/:id", adminOnly, cfg.Venues.Update)
	protected.Delete("/venues/:id", adminOnly, cfg.Venues.Delete)
	protected.Post("/venues/:id/manager", adminOnly, cfg.Staff.AssignManager)
	protected.Get("/venues/:id/staff", management, cfg.Venues.ListStaff)

	protected.Get("/venues/:id/categories", management, cfg.Menu.ListCategories)
	protected.Post("/venues/:id/categories", management, cfg.Menu.CreateCategory)
	protected.Put("/categories/:id", management, cfg.Menu.UpdateCategory)
	protected.Delete("/categories/:id", management, cfg.Menu.DeleteCategory)
	protected.Get("/categories/:id/products", management, cfg.Menu.ListCategoryProducts)

	protected.Get("/venues/:id/products", management, cfg.Menu.ListProducts)
	protected.Post("/venues/:id/products", management, cfg.Menu.CreateProduct)
	protected.Post("/venues/:id/products/images", management, cfg.Menu.UploadProductImage)
	protected.Put("/products/:id", management, cfg.Menu.UpdateProduct)
	protected.Delete("/products/:id", management, cfg.Menu.DeleteProduct)
}
