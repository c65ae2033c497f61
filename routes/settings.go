package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinicdesk/clinic-api/controllers"
	"github.com/clinicdesk/clinic-api/middleware"
	"github.com/clinicdesk/clinic-api/models"
)

// SetupSettingsRoutes configures clinic settings management (admin only).
func SetupSettingsRoutes(app *fiber.App) {
	settings := app.Group("/settings", middleware.Protected(), middleware.RequireRole(models.RoleAdmin))
	settings.Get("/", controllers.GetSettings)
	settings.Put("/", controllers.UpdateSettings)
}
