package admin

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/clinicdesk/clinic-api/db"
	"github.com/clinicdesk/clinic-api/models"
	"github.com/clinicdesk/clinic-api/redis"
	"github.com/clinicdesk/clinic-api/utils"
)

// GetAppointments lists bookings for the dashboard, optionally filtered by
// date and status, newest first, paginated.
func GetAppointments(c *fiber.Ctx) error {
	page := 1
	limit := 20
	if parsed := c.QueryInt("page"); parsed > 0 {
		page = parsed
	}
	if parsed := c.QueryInt("limit"); parsed > 0 {
		limit = parsed
	}
	offset := (page - 1) * limit

	query := db.DB.Model(&models.Appointment{}).Preload("Service")

	if date := c.Query("date"); date != "" {
		query = query.Where("appointment_date = ?", date)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	var appointments []models.Appointment
	if err := query.
		Order("appointment_date desc, appointment_time asc").
		Limit(limit).
		Offset(offset).
		Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"appointments": appointments,
		"total":        total,
		"page":         page,
		"limit":        limit,
	})
}

// GetAppointment returns a booking by ID
func GetAppointment(c *fiber.Ctx) error {
	id := c.Params("id")
	var appointment models.Appointment
	if err := db.DB.Preload("Service").First(&appointment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointment)
}

// UpdateAppointmentStatus transitions a booking through its state machine.
// Confirming sends the patient a confirmation email; cancelling raises a
// persisted alert plus a fire-and-forget push hint.
func UpdateAppointmentStatus(c *fiber.Ctx) error {
	id := c.Params("id")

	type StatusInput struct {
		Status models.AppointmentStatus `json:"status"`
	}
	input := new(StatusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var appointment models.Appointment
	if err := db.DB.Preload("Service").First(&appointment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}

	if err := appointment.UpdateStatus(db.DB, input.Status); err != nil {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Invalid status transition",
			Error:   err.Error(),
		})
	}

	switch input.Status {
	case models.StatusConfirmed:
		go sendConfirmationEmail(appointment)
	case models.StatusCancelled:
		redis.InvalidateSlots(appointment.AppointmentDate)
		alert := &models.Alert{
			Type:          models.AlertTypeCancellation,
			Title:         "Appointment cancelled",
			Message:       fmt.Sprintf("%s on %s at %s was cancelled", appointment.PatientName, appointment.AppointmentDate, appointment.AppointmentTime),
			AppointmentID: appointment.ID,
		}
		if err := utils.RaiseAlert(alert); err != nil {
			log.Printf("Failed to persist cancellation alert for appointment %d: %v", appointment.ID, err)
		}
	}

	return c.JSON(appointment)
}

// DeleteAppointment removes a booking by ID
func DeleteAppointment(c *fiber.Ctx) error {
	id := c.Params("id")
	var appointment models.Appointment
	if err := db.DB.First(&appointment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Delete(&appointment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete appointment",
			Error:   err.Error(),
		})
	}
	redis.InvalidateSlots(appointment.AppointmentDate)
	return c.SendStatus(fiber.StatusNoContent)
}

func sendConfirmationEmail(appointment models.Appointment) {
	subject := "Your appointment is confirmed"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your appointment has been confirmed.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
			<li><strong>Reference:</strong> %s</li>
		</ul>
		<p>Please arrive on time. If you need to reschedule or cancel, contact us as soon as possible.</p>
		<p>Best regards,</p>
		<p>The Clinic Team</p>
	`, appointment.PatientName, appointment.Service.Name,
		appointment.AppointmentDate, appointment.AppointmentTime, appointment.Reference)

	if err := utils.SendEmail(appointment.PatientEmail, subject, body); err != nil {
		log.Printf("Failed to send confirmation email for appointment %d: %v", appointment.ID, err)
	}
}
