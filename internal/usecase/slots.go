package usecase

import (
	"fmt"
	"strconv"
	"strings"
)

// parseClock converts an "HH:MM" label to minutes since midnight.
func parseClock(value string) (int, error) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("%w: %q is not HH:MM", ErrInvalidRange, value)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("%w: %q is not HH:MM", ErrInvalidRange, value)
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q is not HH:MM", ErrInvalidRange, value)
	}

	return hours*60 + minutes, nil
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// GenerateSlots enumerates the slot-start labels covering [start, end) at
// the given granularity. Both bounds must be same-day "HH:MM" values
// aligned to the granularity. Pure function of its inputs.
func GenerateSlots(start, end string, granularityMinutes int) ([]string, error) {
	if granularityMinutes <= 0 {
		return nil, fmt.Errorf("%w: granularity must be positive", ErrInvalidRange)
	}

	startMin, err := parseClock(start)
	if err != nil {
		return nil, err
	}

	endMin, err := parseClock(end)
	if err != nil {
		return nil, err
	}

	if endMin <= startMin {
		return nil, fmt.Errorf("%w: end %s is not after start %s", ErrInvalidRange, end, start)
	}

	if startMin%granularityMinutes != 0 || endMin%granularityMinutes != 0 {
		return nil, fmt.Errorf("%w: bounds must align to %d-minute slots", ErrInvalidRange, granularityMinutes)
	}

	slots := make([]string, 0, (endMin-startMin)/granularityMinutes)
	for current := startMin; current < endMin; current += granularityMinutes {
		slots = append(slots, formatClock(current))
	}

	if len(slots) == 0 {
		return nil, fmt.Errorf("%w: range produces no slots", ErrInvalidRange)
	}

	return slots, nil
}
