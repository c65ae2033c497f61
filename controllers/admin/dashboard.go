package admin

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/clinicdesk/clinic-api/db"
	"github.com/clinicdesk/clinic-api/models"
	"github.com/clinicdesk/clinic-api/utils"
)

// GetDashboardOverview returns the headline numbers the dashboard renders.
func GetDashboardOverview(c *fiber.Ctx) error {
	var statistics struct {
		TotalAppointments int64     `json:"total_appointments"`
		PendingCount      int64     `json:"pending_count"`
		ConfirmedCount    int64     `json:"confirmed_count"`
		CompletedCount    int64     `json:"completed_count"`
		CancelledCount    int64     `json:"cancelled_count"`
		TodayCount        int64     `json:"today_count"`
		UnreadAlerts      int64     `json:"unread_alerts"`
		TotalServices     int64     `json:"total_services"`
		TotalRevenue      float64   `json:"total_revenue"`
		LastUpdated       time.Time `json:"last_updated"`
	}

	appointmentQuery := db.DB.Model(&models.Appointment{})
	appointmentQuery.Count(&statistics.TotalAppointments)

	// Counts by status
	db.DB.Model(&models.Appointment{}).Where("status = ?", models.StatusPending).Count(&statistics.PendingCount)
	db.DB.Model(&models.Appointment{}).Where("status = ?", models.StatusConfirmed).Count(&statistics.ConfirmedCount)
	db.DB.Model(&models.Appointment{}).Where("status = ?", models.StatusCompleted).Count(&statistics.CompletedCount)
	db.DB.Model(&models.Appointment{}).Where("status = ?", models.StatusCancelled).Count(&statistics.CancelledCount)

	today := time.Now().In(utils.ClinicLocation()).Format("2006-01-02")
	db.DB.Model(&models.Appointment{}).Where("appointment_date = ?", today).Count(&statistics.TodayCount)

	db.DB.Model(&models.Alert{}).Where("read = ?", false).Count(&statistics.UnreadAlerts)
	db.DB.Model(&models.Service{}).Count(&statistics.TotalServices)

	// Revenue from completed appointments, priced by the linked service
	type RevenueResult struct {
		TotalRevenue float64
	}
	var revenueResult RevenueResult
	db.DB.Table("appointments").
		Joins("JOIN services ON appointments.service_id = services.id").
		Where("appointments.status = ?", models.StatusCompleted).
		Where("appointments.deleted_at IS NULL").
		Select("SUM(services.price) as total_revenue").
		Scan(&revenueResult)
	statistics.TotalRevenue = revenueResult.TotalRevenue

	statistics.LastUpdated = time.Now()

	return c.JSON(statistics)
}

// GetTodayAppointments lists today's bookings in time order.
func GetTodayAppointments(c *fiber.Ctx) error {
	today := time.Now().In(utils.ClinicLocation()).Format("2006-01-02")

	var appointments []models.Appointment
	if err := db.DB.Preload("Service").
		Where("appointment_date = ?", today).
		Order("appointment_time asc").
		Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"date":         today,
		"appointments": appointments,
		"count":        len(appointments),
	})
}
