package services

import (
	"time"

	"github.com/andikahakim/royba/internal/models"
)

const (
	shiftMorningStartHour = 7
	shiftEveningStartHour = 15
	shiftNightStartHour   = 23
)

var shiftStarts = map[int]string{
	1: "07:00:00",
	2: "15:00:00",
	3: "23:00:00",
}

// CurrentShift maps a wall-clock instant to one of the three fixed
// 8-hour shifts: [07:00,15:00) is 1, [15:00,23:00) is 2, the rest of
// the day is 3.
func CurrentShift(now time.Time) int {
	hour := now.Hour()
	switch {
	case hour >= shiftMorningStartHour && hour < shiftEveningStartHour:
		return 1
	case hour >= shiftEveningStartHour && hour < shiftNightStartHour:
		return 2
	default:
		return 3
	}
}

// ShiftStart returns the shift's nominal start as a time-of-day string.
func ShiftStart(shift int) string {
	start, ok := shiftStarts[shift]
	if !ok {
		return shiftStarts[3]
	}
	return start
}

// IsLate reports whether a check-in time-of-day falls strictly after
// the shift's nominal start. The comparison is time-of-day only: a
// night-shift check-in after midnight compares as earlier than 23:00
// and is judged on time, even though the shift started the prior
// evening. Kept as-is; see the lateness tests for the documented
// midnight rollover gap.
func IsLate(checkIn string, shift int) bool {
	checkInAt, err := time.Parse(models.TimeLayout, checkIn)
	if err != nil {
		return false
	}
	startAt, err := time.Parse(models.TimeLayout, ShiftStart(shift))
	if err != nil {
		return false
	}
	return checkInAt.After(startAt)
}
