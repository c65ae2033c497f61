package utils

import (
	"encoding/json"
	"log"

	"github.com/clinicdesk/clinic-api/db"
	"github.com/clinicdesk/clinic-api/models"
	"github.com/clinicdesk/clinic-api/redis"
)

// RaiseAlert persists a dashboard alert and publishes a fire-and-forget hint
// on the alerts channel. Publish failures are logged and swallowed: the row
// is the durable copy, the hint only wakes up connected dashboards.
func RaiseAlert(alert *models.Alert) error {
	if err := db.DB.Create(alert).Error; err != nil {
		return err
	}

	payload, err := json.Marshal(alert)
	if err != nil {
		return nil
	}
	if err := redis.Client.Publish(redis.Ctx, redis.AlertChannel, payload).Err(); err != nil {
		log.Printf("Failed to publish alert %d: %v", alert.ID, err)
	}
	return nil
}
