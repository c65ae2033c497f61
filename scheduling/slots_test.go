package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicdesk/clinic-api/models"
)

func formatStarts(starts []time.Time) []string {
	out := make([]string, 0, len(starts))
	for _, s := range starts {
		out = append(out, s.Format("15:04"))
	}
	return out
}

func TestGenerateCandidateStarts(t *testing.T) {
	starts, err := GenerateCandidateStarts(date("2024-06-10"), interval("09:00", "17:00"), 30, 15)
	require.NoError(t, err)

	formatted := formatStarts(starts)
	require.Len(t, formatted, 31)
	assert.Equal(t, "09:00", formatted[0])
	// 16:30 + 30min ends exactly at closing time and is included
	assert.Equal(t, "16:30", formatted[len(formatted)-1])
}

func TestGenerateClosingBoundary(t *testing.T) {
	// 16:45 + 30min would end 17:15, past closing: excluded
	starts, err := GenerateCandidateStarts(date("2024-06-10"), interval("09:00", "17:00"), 30, 15)
	require.NoError(t, err)
	assert.NotContains(t, formatStarts(starts), "16:45")

	// With a 60 minute service the last start moves back to 16:00
	starts, err = GenerateCandidateStarts(date("2024-06-10"), interval("09:00", "17:00"), 60, 15)
	require.NoError(t, err)
	formatted := formatStarts(starts)
	assert.Equal(t, "16:00", formatted[len(formatted)-1])
}

func TestGenerateNoRoom(t *testing.T) {
	// Interval shorter than the service duration: nothing fits
	starts, err := GenerateCandidateStarts(date("2024-06-10"), interval("09:00", "09:20"), 30, 15)
	require.NoError(t, err)
	assert.Empty(t, starts)

	// Exactly one slot fits
	starts, err = GenerateCandidateStarts(date("2024-06-10"), interval("09:00", "09:30"), 30, 15)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00"}, formatStarts(starts))
}

func TestGenerateInvalidConfiguration(t *testing.T) {
	_, err := GenerateCandidateStarts(date("2024-06-10"), interval("09:00", "17:00"), 0, 15)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = GenerateCandidateStarts(date("2024-06-10"), interval("09:00", "17:00"), -30, 15)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = GenerateCandidateStarts(date("2024-06-10"), interval("09:00", "17:00"), 30, 0)
	assert.ErrorIs(t, err, ErrInvalidStep)

	_, err = GenerateCandidateStarts(date("2024-06-10"), interval("9 am", "17:00"), 30, 15)
	assert.Error(t, err)
}

func TestGenerateAscendingAndDeterministic(t *testing.T) {
	first, err := GenerateCandidateStarts(date("2024-06-10"), interval("09:00", "12:00"), 45, 15)
	require.NoError(t, err)
	for i := 1; i < len(first); i++ {
		assert.True(t, first[i-1].Before(first[i]))
	}

	second, err := GenerateCandidateStarts(date("2024-06-10"), interval("09:00", "12:00"), 45, 15)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func booking(day, start string, minutes int, status models.AppointmentStatus) models.Appointment {
	return models.Appointment{
		AppointmentDate: day,
		AppointmentTime: start,
		DurationMinutes: minutes,
		Status:          status,
	}
}

func TestFilterAvailableRemovesOverlaps(t *testing.T) {
	starts, err := GenerateCandidateStarts(date("2024-06-10"), interval("09:00", "17:00"), 30, 15)
	require.NoError(t, err)

	booked := []models.Appointment{
		booking("2024-06-10", "10:00", 60, models.StatusConfirmed),
	}

	available := formatStarts(FilterAvailable(starts, 30, booked))

	// Everything whose half-open interval touches [10:00, 11:00) is gone
	for _, removed := range []string{"09:45", "10:00", "10:15", "10:30", "10:45"} {
		assert.NotContains(t, available, removed)
	}
	assert.Contains(t, available, "09:30")
	assert.Contains(t, available, "11:00")
}

func TestFilterAvailableIgnoresCancelled(t *testing.T) {
	starts, err := GenerateCandidateStarts(date("2024-06-10"), interval("09:00", "17:00"), 30, 15)
	require.NoError(t, err)

	booked := []models.Appointment{
		booking("2024-06-10", "10:00", 60, models.StatusCancelled),
	}

	available := FilterAvailable(starts, 30, booked)
	assert.Len(t, available, len(starts))
}

func TestFilterAvailableDefaultDuration(t *testing.T) {
	starts, err := GenerateCandidateStarts(date("2024-06-10"), interval("09:00", "17:00"), 30, 15)
	require.NoError(t, err)

	// Missing duration falls back to 30 minutes: blocks [10:00, 10:30)
	booked := []models.Appointment{
		booking("2024-06-10", "10:00", 0, models.StatusPending),
	}

	available := formatStarts(FilterAvailable(starts, 30, booked))
	for _, removed := range []string{"09:45", "10:00", "10:15"} {
		assert.NotContains(t, available, removed)
	}
	assert.Contains(t, available, "09:30")
	assert.Contains(t, available, "10:30")
}

func TestFilterAvailableSkipsMalformedBooking(t *testing.T) {
	starts, err := GenerateCandidateStarts(date("2024-06-10"), interval("09:00", "17:00"), 30, 15)
	require.NoError(t, err)

	booked := []models.Appointment{
		booking("2024-06-10", "garbage", 30, models.StatusConfirmed),
	}

	// An unparseable booking contributes no conflict
	available := FilterAvailable(starts, 30, booked)
	assert.Len(t, available, len(starts))
}

func TestFilterAvailablePreservesOrder(t *testing.T) {
	starts, err := GenerateCandidateStarts(date("2024-06-10"), interval("09:00", "17:00"), 30, 15)
	require.NoError(t, err)

	booked := []models.Appointment{
		booking("2024-06-10", "12:00", 30, models.StatusConfirmed),
	}

	available := FilterAvailable(starts, 30, booked)
	for i := 1; i < len(available); i++ {
		assert.True(t, available[i-1].Before(available[i]))
	}
}
