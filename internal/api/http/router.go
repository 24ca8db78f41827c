package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/class-booking-service/internal/api/http/handlers"
	"github.com/spec-kit/class-booking-service/internal/auth"
	"github.com/spec-kit/class-booking-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	AppName        string
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Classes        *handlers.ClassesHandler
	Bookings       *handlers.BookingsHandler
	Payments       *handlers.PaymentsHandler
	AuthMiddleware *auth.AuthMiddleware
	Directory      auth.RoleSource
}

// RegisterRoutes wires HTTP routes. Role-sensitive routes run the identity
// gate and then their role gate in order before the handler; the role gate
// reads the directory record for the authenticated email.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	identity := cfg.AuthMiddleware
	adminOnly := auth.RequireRole(cfg.Directory, domain.RoleAdmin)
	instructorOnly := auth.RequireRole(cfg.Directory, domain.RoleInstructor)
	studentOnly := auth.RequireRole(cfg.Directory, domain.RoleStudent)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(cfg.AppName + " is running")
	})
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/jwt", cfg.Auth.IssueToken)

	app.Get("/users", guarded(identity, cfg.Users.List, adminOnly)...)
	app.Post("/users", cfg.Users.Create)
	app.Patch("/users/:id/role", guarded(identity, cfg.Users.SetRole, adminOnly)...)
	app.Get("/users/admin/:email", guarded(identity, cfg.Users.CheckAdmin)...)
	app.Get("/users/instructor/:email", guarded(identity, cfg.Users.CheckInstructor)...)
	app.Get("/instructors", cfg.Users.ListInstructors)
	app.Get("/instructors/popular", cfg.Users.ListPopularInstructors)

	app.Post("/classes", guarded(identity, cfg.Classes.Create, instructorOnly)...)
	app.Get("/classes", cfg.Classes.List)
	app.Get("/classes/popular", cfg.Classes.ListPopular)
	app.Get("/classes/approved", cfg.Classes.ListApproved)
	app.Patch("/classes/:id", guarded(identity, cfg.Classes.UpdateContent, instructorOnly)...)
	app.Patch("/classes/:id/status", guarded(identity, cfg.Classes.UpdateStatus, adminOnly)...)

	app.Post("/bookings", guarded(identity, cfg.Bookings.Create, studentOnly)...)
	app.Get("/bookings", guarded(identity, cfg.Bookings.List, auth.RequireSelf("email"))...)
	app.Delete("/bookings/:id", guarded(identity, cfg.Bookings.Delete)...)

	app.Post("/payments/intent", guarded(identity, cfg.Payments.CreateIntent)...)
}

func guarded(identity *auth.AuthMiddleware, handler fiber.Handler, gates ...auth.Gate) []fiber.Handler {
	return append(identity.Pipeline(gates...), handler)
}
