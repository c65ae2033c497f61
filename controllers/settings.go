package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/clinicdesk/clinic-api/db"
	"github.com/clinicdesk/clinic-api/models"
	"github.com/clinicdesk/clinic-api/utils"
)

// defaultSettings seeds the singleton row on first access.
func defaultSettings() models.ClinicSettings {
	return models.ClinicSettings{
		RegularHours: models.TimeInterval{StartTime: "09:00", EndTime: "17:00"},
		IsOpen:       true,
	}
}

// LoadSettings fetches the clinic settings row, creating the default one if
// none exists yet.
func LoadSettings() (models.ClinicSettings, error) {
	var settings models.ClinicSettings
	err := db.DB.First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = defaultSettings()
		if err := db.DB.Create(&settings).Error; err != nil {
			return settings, err
		}
		return settings, nil
	}
	return settings, err
}

// GetSettings returns the clinic settings
func GetSettings(c *fiber.Ctx) error {
	settings, err := LoadSettings()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch settings",
			Error:   err.Error(),
		})
	}
	return c.JSON(settings)
}

// UpdateSettings replaces the clinic settings wholesale. The incoming
// configuration is validated before anything is written; slot caches become
// stale on success, but their TTL bounds that window.
func UpdateSettings(c *fiber.Ctx) error {
	settings, err := LoadSettings()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch settings",
			Error:   err.Error(),
		})
	}

	var incoming models.ClinicSettings
	if err := c.BodyParser(&incoming); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if err := incoming.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid settings",
			Error:   err.Error(),
		})
	}

	settings.RegularHours = incoming.RegularHours
	settings.SaturdayHours = incoming.SaturdayHours
	settings.SundayHours = incoming.SundayHours
	settings.CustomHours = incoming.CustomHours
	settings.RecurringClosures = incoming.RecurringClosures
	settings.IsOpen = incoming.IsOpen

	if err := db.DB.Save(&settings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update settings",
			Error:   err.Error(),
		})
	}

	return c.JSON(settings)
}
