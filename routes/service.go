package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinicdesk/clinic-api/controllers"
	"github.com/clinicdesk/clinic-api/middleware"
	"github.com/clinicdesk/clinic-api/models"
)

// SetupServiceRoutes configures service catalog management. Reads are public
// (the booking page needs them); writes are admin only.
func SetupServiceRoutes(app *fiber.App) {
	services := app.Group("/services")
	services.Get("/", controllers.GetAllServices)
	services.Get("/:id", controllers.GetService)
	services.Post("/", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.CreateService)
	services.Patch("/:id", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.UpdateService)
	services.Delete("/:id", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.DeleteService)
}
