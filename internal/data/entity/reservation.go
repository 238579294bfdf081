package entity

import (
	"time"

	"github.com/google/uuid"
)

type ReservationStatus string

const (
	ReservationStatusActive    ReservationStatus = "ACTIVE"
	ReservationStatusCancelled ReservationStatus = "CANCELLED"
	ReservationStatusCompleted ReservationStatus = "COMPLETED"
)

// IsTerminal reports whether reservations in this status hold no slots.
// Terminal-status owners make their slot grants zombies.
func (s ReservationStatus) IsTerminal() bool {
	return s == ReservationStatusCancelled || s == ReservationStatusCompleted
}

type ReservationOrigin string

const (
	ReservationOriginManual    ReservationOrigin = "MANUAL"
	ReservationOriginRecurring ReservationOrigin = "RECURRING"
)

type DiscountKind string

const (
	DiscountKindNone    DiscountKind = "NONE"
	DiscountKindFlat    DiscountKind = "FLAT"
	DiscountKindPercent DiscountKind = "PERCENT"
)

type Reservation struct {
	Base
	CustomerName  string            `db:"customer_name"`
	CustomerPhone string            `db:"customer_phone"`
	CourtID       uuid.UUID         `db:"court_id"`
	Sport         string            `db:"sport"`
	Date          time.Time         `db:"date"`
	StartTime     string            `db:"start_time"` // HH:MM
	EndTime       string            `db:"end_time"`   // HH:MM
	SlotCount     int               `db:"slot_count"`
	BaseAmount    int64             `db:"base_amount"`
	DiscountKind  DiscountKind      `db:"discount_kind"`
	DiscountValue float64           `db:"discount_value"`
	FinalAmount   int64             `db:"final_amount"`
	CreatedBy     uuid.UUID         `db:"created_by"`
	Status        ReservationStatus `db:"status"`
	Origin        ReservationOrigin `db:"origin"`
}
