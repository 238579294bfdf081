package entity

import (
	"time"

	"github.com/google/uuid"
)

// SlotGrant claims one (court, date, slot) triple for a reservation.
// The triple is unique among all rows regardless of the owner's status,
// which is the correctness backstop under concurrent bookings.
type SlotGrant struct {
	BaseSimple
	CourtID       uuid.UUID `db:"court_id"`
	Date          time.Time `db:"date"`
	SlotLabel     string    `db:"slot_label"` // HH:MM
	ReservationID uuid.UUID `db:"reservation_id"`
}

// SlotGrantOwner is the read model for availability checks: a grant joined
// with its owning reservation's status. OwnerStatus is nil when the owner
// row is gone.
type SlotGrantOwner struct {
	GrantID       uuid.UUID
	SlotLabel     string
	ReservationID uuid.UUID
	OwnerStatus   *ReservationStatus
}

// IsZombie reports whether the grant is physically present but logically
// free: the owning reservation is missing or in a terminal status.
func (g *SlotGrantOwner) IsZombie() bool {
	return g.OwnerStatus == nil || g.OwnerStatus.IsTerminal()
}
