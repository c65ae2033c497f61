package admin

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinicdesk/clinic-api/db"
	"github.com/clinicdesk/clinic-api/models"
	"github.com/clinicdesk/clinic-api/utils"
)

// GetAlerts lists dashboard alerts, unread first, newest first within each.
func GetAlerts(c *fiber.Ctx) error {
	query := db.DB.Model(&models.Alert{})
	if c.Query("unread") == "true" {
		query = query.Where("read = ?", false)
	}

	var alerts []models.Alert
	if err := query.Order("read asc, created_at desc").Find(&alerts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch alerts",
			Error:   err.Error(),
		})
	}
	return c.JSON(alerts)
}

// MarkAlertRead marks an alert as read
func MarkAlertRead(c *fiber.Ctx) error {
	id := c.Params("id")
	var alert models.Alert
	if err := db.DB.First(&alert, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Alert not found",
			Error:   err.Error(),
		})
	}
	alert.Read = true
	if err := db.DB.Save(&alert).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update alert",
			Error:   err.Error(),
		})
	}
	return c.JSON(alert)
}
