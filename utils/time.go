package utils

import (
	"os"
	"time"
)

// ClinicLocation returns the timezone clinic dates and times are interpreted
// in, from CLINIC_TZ (e.g. "Europe/Berlin"). Falls back to the server's local
// zone if unset or unknown.
func ClinicLocation() *time.Location {
	tz := os.Getenv("CLINIC_TZ")
	if tz == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.Local
	}
	return loc
}
