package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinicdesk/clinic-api/controllers/booking"
)

// SetupBookingRoutes configures the public booking flow: catalog,
// availability and booking submission. No auth; patients have no accounts.
func SetupBookingRoutes(app *fiber.App) {
	public := app.Group("/booking")
	public.Get("/services", booking.GetServices)
	public.Get("/availability", booking.GetAvailability)
	public.Post("/appointments", booking.CreateAppointment)
}
