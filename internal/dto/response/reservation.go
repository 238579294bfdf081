package response

import (
	"time"

	"court-booking/internal/data/entity"
	"court-booking/pkg/utils"
)

type PaymentResponse struct {
	ID            string               `json:"id"`
	TotalAmount   int64                `json:"total_amount"`
	AdvancePaid   int64                `json:"advance_paid"`
	BalanceAmount int64                `json:"balance_amount"`
	Mode          string               `json:"mode,omitempty"`
	Notes         string               `json:"notes,omitempty"`
	Status        entity.PaymentStatus `json:"status"`
}

type ReservationResponse struct {
	ID            string                   `json:"id"`
	CustomerName  string                   `json:"customer_name"`
	CustomerPhone string                   `json:"customer_phone"`
	CourtID       string                   `json:"court_id"`
	Sport         string                   `json:"sport"`
	Date          string                   `json:"date"`
	StartTime     string                   `json:"start_time"`
	EndTime       string                   `json:"end_time"`
	SlotCount     int                      `json:"slot_count"`
	Slots         []string                 `json:"slots,omitempty"`
	BaseAmount    int64                    `json:"base_amount"`
	DiscountKind  entity.DiscountKind      `json:"discount_kind"`
	DiscountValue float64                  `json:"discount_value"`
	FinalAmount   int64                    `json:"final_amount"`
	Status        entity.ReservationStatus `json:"status"`
	Origin        entity.ReservationOrigin `json:"origin"`
	Payment       *PaymentResponse         `json:"payment,omitempty"`
	CreatedAt     time.Time                `json:"created_at"`
	UpdatedAt     time.Time                `json:"updated_at"`
}

type AvailabilityResponse struct {
	Available        bool     `json:"available"`
	ConflictingSlots []string `json:"conflicting_slots"`
}

func PaymentToResponse(payment *entity.Payment) *PaymentResponse {
	if payment == nil {
		return nil
	}
	return &PaymentResponse{
		ID:            payment.ID.String(),
		TotalAmount:   payment.TotalAmount,
		AdvancePaid:   payment.AdvancePaid,
		BalanceAmount: payment.BalanceAmount,
		Mode:          payment.Mode,
		Notes:         payment.Notes,
		Status:        payment.Status,
	}
}

func ReservationToResponse(reservation *entity.Reservation, slots []string, payment *entity.Payment) *ReservationResponse {
	return &ReservationResponse{
		ID:            reservation.ID.String(),
		CustomerName:  reservation.CustomerName,
		CustomerPhone: reservation.CustomerPhone,
		CourtID:       reservation.CourtID.String(),
		Sport:         reservation.Sport,
		Date:          utils.FormatDate(reservation.Date),
		StartTime:     reservation.StartTime,
		EndTime:       reservation.EndTime,
		SlotCount:     reservation.SlotCount,
		Slots:         slots,
		BaseAmount:    reservation.BaseAmount,
		DiscountKind:  reservation.DiscountKind,
		DiscountValue: reservation.DiscountValue,
		FinalAmount:   reservation.FinalAmount,
		Status:        reservation.Status,
		Origin:        reservation.Origin,
		Payment:       PaymentToResponse(payment),
		CreatedAt:     reservation.CreatedAt,
		UpdatedAt:     reservation.UpdatedAt,
	}
}
