package entity

import (
	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPartial PaymentStatus = "PARTIAL"
	PaymentStatusPaid    PaymentStatus = "PAID"
)

type Payment struct {
	Base
	ReservationID uuid.UUID     `db:"reservation_id"`
	TotalAmount   int64         `db:"total_amount"`
	AdvancePaid   int64         `db:"advance_paid"`
	BalanceAmount int64         `db:"balance_amount"`
	Mode          string        `db:"mode"`
	Notes         string        `db:"notes"`
	Status        PaymentStatus `db:"status"`
}
