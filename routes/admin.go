package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinicdesk/clinic-api/controllers/admin"
	"github.com/clinicdesk/clinic-api/middleware"
	"github.com/clinicdesk/clinic-api/models"
)

// SetupAdminRoutes configures the dashboard surface: appointment management,
// alerts and overview stats. Staff can view and transition appointments;
// deleting them is admin only.
func SetupAdminRoutes(app *fiber.App) {
	group := app.Group("/admin", middleware.Protected(), middleware.RequireRole(models.RoleAdmin, models.RoleStaff))

	group.Get("/dashboard", admin.GetDashboardOverview)
	group.Get("/dashboard/today", admin.GetTodayAppointments)

	group.Get("/appointments", admin.GetAppointments)
	group.Get("/appointments/:id", admin.GetAppointment)
	group.Patch("/appointments/:id/status", admin.UpdateAppointmentStatus)
	group.Delete("/appointments/:id", middleware.RequireRole(models.RoleAdmin), admin.DeleteAppointment)

	group.Get("/alerts", admin.GetAlerts)
	group.Patch("/alerts/:id/read", admin.MarkAlertRead)
}
