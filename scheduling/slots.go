package scheduling

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/clinicdesk/clinic-api/models"
)

// DefaultStepMinutes is the granularity candidate slot starts are generated at.
const DefaultStepMinutes = 15

var (
	// ErrInvalidDuration means a non-positive service duration reached the
	// generator. This is a configuration bug, never a runtime condition.
	ErrInvalidDuration = errors.New("scheduling: duration must be positive")
	// ErrInvalidStep means a non-positive step reached the generator.
	ErrInvalidStep = errors.New("scheduling: step must be positive")
)

func minutesOfDay(hhmm string) (int, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", hhmm, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// GenerateCandidateStarts enumerates slot start times for a date within the
// given operating hours, stepping from the open time by stepMinutes. A start
// is kept while start+duration fits before closing; a slot may end exactly at
// closing time but never run past it. Starts are ascending and the result is
// deterministic for the same inputs.
func GenerateCandidateStarts(date time.Time, hours models.TimeInterval, durationMinutes, stepMinutes int) ([]time.Time, error) {
	if durationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}
	if stepMinutes <= 0 {
		return nil, ErrInvalidStep
	}

	open, err := minutesOfDay(hours.StartTime)
	if err != nil {
		return nil, err
	}
	closing, err := minutesOfDay(hours.EndTime)
	if err != nil {
		return nil, err
	}

	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	var starts []time.Time
	for m := open; m+durationMinutes <= closing; m += stepMinutes {
		starts = append(starts, midnight.Add(time.Duration(m)*time.Minute))
	}
	return starts, nil
}

// FilterAvailable drops candidates whose occupied interval overlaps an
// existing non-cancelled booking, half-open semantics on both sides. A booking
// whose date or time cannot be parsed contributes no conflict; it is logged
// and skipped. Order is preserved.
func FilterAvailable(candidates []time.Time, durationMinutes int, booked []models.Appointment) []time.Time {
	if len(candidates) == 0 {
		return candidates
	}
	loc := candidates[0].Location()

	type span struct {
		start time.Time
		end   time.Time
	}
	var busy []span
	for i := range booked {
		b := &booked[i]
		if b.Status == models.StatusCancelled {
			continue
		}
		start, err := b.StartAt(loc)
		if err != nil {
			log.Printf("Skipping booking %d with unparseable date/time %q %q: %v",
				b.ID, b.AppointmentDate, b.AppointmentTime, err)
			continue
		}
		end, _ := b.EndAt(loc)
		busy = append(busy, span{start: start, end: end})
	}

	duration := time.Duration(durationMinutes) * time.Minute
	available := make([]time.Time, 0, len(candidates))
	for _, start := range candidates {
		end := start.Add(duration)
		free := true
		for _, b := range busy {
			if start.Before(b.end) && b.start.Before(end) {
				free = false
				break
			}
		}
		if free {
			available = append(available, start)
		}
	}
	return available
}

// ComputeAvailableSlots is the public entry point of the slot engine: resolve
// the operating hours for the date, enumerate candidate starts for the
// service's duration, drop conflicts with existing bookings and format the
// survivors as ascending "HH:MM" strings. Pure and synchronous; the caller
// supplies settings and bookings, the engine performs no I/O.
func ComputeAvailableSlots(date time.Time, service models.Service, settings models.ClinicSettings, bookings []models.Appointment) ([]string, error) {
	if !settings.IsOpen {
		return []string{}, nil
	}

	hours := ResolveOperatingHours(date, &settings)
	if hours == nil {
		return []string{}, nil
	}

	candidates, err := GenerateCandidateStarts(date, *hours, service.DurationMinutes, DefaultStepMinutes)
	if err != nil {
		return nil, err
	}

	available := FilterAvailable(candidates, service.DurationMinutes, bookings)

	slots := make([]string, 0, len(available))
	for _, start := range available {
		slots = append(slots, start.Format("15:04"))
	}
	return slots, nil
}
