package usecase

import (
	"court-booking/internal/data/repository"
	"court-booking/pkg/database"
	"court-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Reservation ReservationService
	Court       CourtService
}

func NewService(db database.PgxIface, repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Reservation: NewReservationService(db, repo, config.Booking, log),
		Court:       NewCourtService(repo, log),
	}
}
