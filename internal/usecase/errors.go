package usecase

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrCourtNotFound       = errors.New("court not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrCourtInactive       = errors.New("court is not active")
	ErrInvalidRange        = errors.New("invalid time range")
	ErrOverpayment         = errors.New("advance paid exceeds final amount")
	ErrInvalidInput        = errors.New("invalid input")
)

// SlotConflictError reports which candidate slots are already held by an
// active reservation. Race is set when the conflict was detected by the
// storage uniqueness constraint rather than the optimistic check.
type SlotConflictError struct {
	Slots []string
	Race  bool
}

func (e *SlotConflictError) Error() string {
	if e.Race {
		return fmt.Sprintf("slot conflict (race condition detected): %s", strings.Join(e.Slots, ", "))
	}
	return fmt.Sprintf("slot conflict: %s", strings.Join(e.Slots, ", "))
}
