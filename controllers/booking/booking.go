package booking

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/clinicdesk/clinic-api/controllers"
	"github.com/clinicdesk/clinic-api/db"
	"github.com/clinicdesk/clinic-api/models"
	"github.com/clinicdesk/clinic-api/redis"
	"github.com/clinicdesk/clinic-api/scheduling"
	"github.com/clinicdesk/clinic-api/utils"
)

// GetServices returns the catalog the booking page renders.
func GetServices(c *fiber.Ctx) error {
	var services []models.Service
	if err := db.DB.Order("name asc").Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch services",
			Error:   err.Error(),
		})
	}
	return c.JSON(services)
}

// GetAvailability returns bookable start times for a date and service.
// A closed day (or a closed clinic) is an empty list, not an error.
func GetAvailability(c *fiber.Ctx) error {
	loc := utils.ClinicLocation()

	dateStr := c.Query("date")      // Expected format: "YYYY-MM-DD"
	serviceID := c.QueryInt("service_id")

	date, err := time.ParseInLocation("2006-01-02", dateStr, loc)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid date format, use YYYY-MM-DD",
		})
	}
	if serviceID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Service ID is required",
		})
	}

	var service models.Service
	if err := db.DB.First(&service, serviceID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}

	if slots, ok := redis.CachedSlots(dateStr, service.ID); ok {
		return c.JSON(fiber.Map{
			"slots":      slots,
			"date":       dateStr,
			"service_id": service.ID,
		})
	}

	settings, err := controllers.LoadSettings()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch clinic settings",
		})
	}

	var bookings []models.Appointment
	if err := db.DB.Where("appointment_date = ?", dateStr).Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch appointments",
		})
	}

	slots, err := scheduling.ComputeAvailableSlots(date, service, settings, bookings)
	if err != nil {
		log.Printf("Slot computation failed for %s: %v", dateStr, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute available slots",
		})
	}

	redis.CacheSlots(dateStr, service.ID, slots)

	if len(slots) == 0 {
		return c.JSON(fiber.Map{
			"slots":      slots,
			"date":       dateStr,
			"service_id": service.ID,
			"message":    "No available time slots for this date and service",
		})
	}
	return c.JSON(fiber.Map{
		"slots":      slots,
		"date":       dateStr,
		"service_id": service.ID,
	})
}

// CreateAppointment books a slot. Availability is computed against a snapshot
// and re-checked inside a transaction with a row-locking conflict query, so
// two requests racing for overlapping intervals cannot both commit; the loser
// gets a 409.
func CreateAppointment(c *fiber.Ctx) error {
	var appointment models.Appointment

	if err := c.BodyParser(&appointment); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if appointment.PatientName == "" || appointment.PatientEmail == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Patient name and email are required",
		})
	}

	loc := utils.ClinicLocation()
	start, err := time.ParseInLocation("2006-01-02 15:04",
		appointment.AppointmentDate+" "+appointment.AppointmentTime, loc)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid appointment date or time, use YYYY-MM-DD and HH:MM",
			Error:   err.Error(),
		})
	}

	var service models.Service
	if err := db.DB.First(&service, appointment.ServiceID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
			Error:   err.Error(),
		})
	}

	// Snapshot the duration so later service edits do not move this booking
	appointment.DurationMinutes = service.DurationMinutes
	appointment.Status = models.StatusPending

	settings, err := controllers.LoadSettings()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch clinic settings",
			Error:   err.Error(),
		})
	}
	if !settings.IsOpen {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "The clinic is not taking bookings at the moment",
		})
	}

	hours := scheduling.ResolveOperatingHours(start, &settings)
	if hours == nil || !withinHours(appointment.AppointmentTime, service.DurationMinutes, hours) {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Appointment is outside operating hours",
		})
	}

	// Create inside a transaction; the conflict query locks overlapping rows
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		free, err := utils.CheckSlotFree(tx, appointment.AppointmentDate, appointment.AppointmentTime, appointment.DurationMinutes)
		if err != nil {
			return err
		}
		if !free {
			return errBookingConflict
		}
		return tx.Create(&appointment).Error
	})
	if err == errBookingConflict {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Time slot not available",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create appointment",
			Error:   err.Error(),
		})
	}

	redis.InvalidateSlots(appointment.AppointmentDate)

	go sendBookingReceivedEmail(appointment, service)

	return c.Status(fiber.StatusCreated).JSON(appointment)
}

var errBookingConflict = fmt.Errorf("time slot not available")

// withinHours checks that the requested start and its full duration fit the
// resolved interval. Ending exactly at closing time is allowed.
func withinHours(startTime string, durationMinutes int, hours *models.TimeInterval) bool {
	start, err := time.Parse("15:04", startTime)
	if err != nil {
		return false
	}
	open, err1 := time.Parse("15:04", hours.StartTime)
	closing, err2 := time.Parse("15:04", hours.EndTime)
	if err1 != nil || err2 != nil {
		return false
	}
	end := start.Add(time.Duration(durationMinutes) * time.Minute)
	return !start.Before(open) && !end.After(closing)
}

func sendBookingReceivedEmail(appointment models.Appointment, service models.Service) {
	subject := "We received your booking request"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Thank you for booking with us. Your request is pending confirmation.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
			<li><strong>Reference:</strong> %s</li>
		</ul>
		<p>We will email you again once the appointment is confirmed.</p>
		<p>Best regards,</p>
		<p>The Clinic Team</p>
	`, appointment.PatientName, service.Name, appointment.AppointmentDate,
		appointment.AppointmentTime, appointment.Reference)

	if err := utils.SendEmail(appointment.PatientEmail, subject, body); err != nil {
		log.Printf("Failed to send booking email for appointment %d: %v", appointment.ID, err)
	}
}
