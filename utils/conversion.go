package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesToClock renders minutes-from-midnight as a 24h "HH:MM" string.
func MinutesToClock(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ClockToMinutes parses a 24h "HH:MM" string into minutes from midnight.
func ClockToMinutes(clock string) (int, error) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock value %q, expected HH:MM", clock)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q: %w", clock, err)
	}
	mins, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q: %w", clock, err)
	}
	if hours < 0 || hours > 23 || mins < 0 || mins > 59 {
		return 0, fmt.Errorf("clock value %q out of range", clock)
	}
	return hours*60 + mins, nil
}

// MinutesToLabel renders minutes-from-midnight as a 12h display label, e.g. "9:00 AM".
func MinutesToLabel(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	hours := (minutes / 60) % 24
	mins := minutes % 60
	suffix := "AM"
	if hours >= 12 {
		suffix = "PM"
	}
	display := hours % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, mins, suffix)
}

// IntervalLabel renders a start/end pair as a display label, e.g. "9:00 AM - 10:30 AM".
func IntervalLabel(start, end int) string {
	return fmt.Sprintf("%s - %s", MinutesToLabel(start), MinutesToLabel(end))
}
