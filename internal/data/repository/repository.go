package repository

import (
	"court-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Court       CourtRepository
	Reservation ReservationRepository
	SlotGrant   SlotGrantRepository
	Payment     PaymentRepository
}

func NewRepository(db database.Querier, log *zap.Logger) *Repository {
	return &Repository{
		Court:       NewCourtRepository(db, log),
		Reservation: NewReservationRepository(db, log),
		SlotGrant:   NewSlotGrantRepository(db, log),
		Payment:     NewPaymentRepository(db, log),
	}
}

// WithTx returns a Repository whose members all operate inside the given
// transaction.
func (r *Repository) WithTx(tx database.Tx) *Repository {
	return &Repository{
		Court:       r.Court.WithTx(tx),
		Reservation: r.Reservation.WithTx(tx),
		SlotGrant:   r.SlotGrant.WithTx(tx),
		Payment:     r.Payment.WithTx(tx),
	}
}
