package models

import (
	"fmt"

	"gorm.io/gorm"
)

// Service is a bookable clinic service. DurationMinutes determines how much
// room a slot must keep open before closing time.
type Service struct {
	gorm.Model
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `json:"price"`
}

func (s *Service) BeforeSave(tx *gorm.DB) error {
	if s.DurationMinutes <= 0 {
		return fmt.Errorf("service duration must be positive, got %d", s.DurationMinutes)
	}
	return nil
}
