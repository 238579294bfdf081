package adaptor

import (
	"court-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Reservation *ReservationHandler
	Court       *CourtHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Reservation: NewReservationHandler(service.Reservation, log),
		Court:       NewCourtHandler(service.Court, log),
	}
}
