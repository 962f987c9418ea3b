package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/rental-crm/internal/api/http/handlers"
	"github.com/spec-kit/rental-crm/internal/auth"
	"github.com/spec-kit/rental-crm/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Customers      *handlers.CustomersHandler
	Admins         *handlers.AdminsHandler
	Vehicles       *handlers.VehiclesHandler
	Insurances     *handlers.InsurancesHandler
	Invoices       *handlers.InvoicesHandler
	Rentals        *handlers.RentalsHandler
	Payments       *handlers.PaymentsHandler
	Comments       *handlers.CommentsHandler
	Posts          *handlers.PostsHandler
	Backup         *handlers.BackupHandler
	Stats          *handlers.StatsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	requireAuth := cfg.AuthMiddleware.Handle
	anyAdmin := auth.RequireRoles(domain.RoleSuperAdmin, domain.RoleGeneralAdmin)
	superAdmin := auth.RequireRoles(domain.RoleSuperAdmin)
	anyRole := auth.RequireRoles(domain.RoleSuperAdmin, domain.RoleGeneralAdmin, domain.RoleCustomer)

	app.Head("/ping/", cfg.Health.Ping)
	app.Head("/database/ping/", cfg.Health.DatabasePing)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/login/", cfg.Auth.Login)
	app.Post("/refresh-token/", cfg.Auth.Refresh)
	app.Post("/logout/", cfg.Auth.Logout)

	app.Get("/backup/", requireAuth, superAdmin, cfg.Backup.Download)
	app.Post("/restore/", requireAuth, superAdmin, cfg.Backup.Restore)
	app.Get("/stats/", requireAuth, anyAdmin, cfg.Stats.Get)

	customers := app.Group("/customers")
	customers.Post("/", cfg.Customers.Create) // self-registration
	customers.Get("/", requireAuth, anyAdmin, cfg.Customers.List)
	customers.Get("/search/", requireAuth, anyAdmin, cfg.Customers.Search)
	customers.Get("/:id", requireAuth, anyRole, cfg.Customers.Get)
	customers.Patch("/:id", requireAuth, anyRole, cfg.Customers.Update)
	customers.Delete("/:id", requireAuth, anyAdmin, cfg.Customers.Delete)

	admins := app.Group("/admins", requireAuth)
	admins.Post("/", superAdmin, cfg.Admins.Create)
	admins.Get("/", superAdmin, cfg.Admins.List)
	admins.Get("/search/", superAdmin, cfg.Admins.Search)
	admins.Get("/:id", anyAdmin, cfg.Admins.Get)
	admins.Patch("/:id", anyAdmin, cfg.Admins.Update)
	admins.Delete("/:id", anyAdmin, cfg.Admins.Delete)

	vehicles := app.Group("/vehicles")
	vehicles.Get("/", cfg.Vehicles.List)
	vehicles.Get("/search/", cfg.Vehicles.Search)
	vehicles.Get("/:id", cfg.Vehicles.Get)
	vehicles.Post("/", requireAuth, anyAdmin, cfg.Vehicles.Create)
	vehicles.Patch("/:id", requireAuth, anyAdmin, cfg.Vehicles.Update)
	vehicles.Delete("/:id", requireAuth, anyAdmin, cfg.Vehicles.Delete)

	insurances := app.Group("/vehicle-insurances", requireAuth, anyAdmin)
	insurances.Post("/", cfg.Insurances.Create)
	insurances.Get("/", cfg.Insurances.List)
	insurances.Get("/search/", cfg.Insurances.Search)
	insurances.Get("/:id", cfg.Insurances.Get)
	insurances.Patch("/:id", cfg.Insurances.Update)
	insurances.Delete("/:id", cfg.Insurances.Delete)

	invoices := app.Group("/invoices", requireAuth)
	invoices.Post("/", anyAdmin, cfg.Invoices.Create)
	invoices.Get("/", anyRole, cfg.Invoices.List)
	invoices.Get("/search/", anyAdmin, cfg.Invoices.Search)
	invoices.Get("/:id", anyRole, cfg.Invoices.Get)
	invoices.Patch("/:id", anyAdmin, cfg.Invoices.Update)
	invoices.Delete("/:id", anyAdmin, cfg.Invoices.Delete)

	rentals := app.Group("/rentals", requireAuth)
	rentals.Post("/", anyAdmin, cfg.Rentals.Create)
	rentals.Get("/", anyRole, cfg.Rentals.List)
	rentals.Get("/search/", anyRole, cfg.Rentals.Search)
	rentals.Get("/:id", anyRole, cfg.Rentals.Get)
	rentals.Patch("/:id", anyAdmin, cfg.Rentals.Update)
	rentals.Delete("/:id", anyAdmin, cfg.Rentals.Delete)

	payments := app.Group("/payments", requireAuth, anyAdmin)
	payments.Post("/", cfg.Payments.Create)
	payments.Get("/", cfg.Payments.List)
	payments.Get("/search/", cfg.Payments.Search)
	payments.Get("/:id", cfg.Payments.Get)
	payments.Patch("/:id", cfg.Payments.Update)
	payments.Delete("/:id", cfg.Payments.Delete)

	comments := app.Group("/comments", requireAuth)
	comments.Post("/", anyRole, cfg.Comments.Create)
	comments.Get("/", anyRole, cfg.Comments.List)
	comments.Get("/search/", anyRole, cfg.Comments.Search)
	comments.Get("/:id", anyRole, cfg.Comments.Get)
	comments.Patch("/:id", anyRole, cfg.Comments.Update)
	comments.Delete("/:id", anyRole, cfg.Comments.Delete)

	posts := app.Group("/posts")
	posts.Get("/", cfg.Posts.List)
	posts.Get("/search/", cfg.Posts.Search)
	posts.Get("/:id", cfg.Posts.Get)
	posts.Post("/", requireAuth, anyAdmin, cfg.Posts.Create)
	posts.Patch("/:id", requireAuth, anyAdmin, cfg.Posts.Update)
	posts.Delete("/:id", requireAuth, anyAdmin, cfg.Posts.Delete)
}
