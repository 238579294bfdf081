package usecase

import (
	"context"
	"fmt"
	"time"

	"court-booking/internal/data/entity"
	"court-booking/internal/data/repository"
	"court-booking/internal/dto/request"
	"court-booking/internal/dto/response"
	"court-booking/pkg/database"
	"court-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReservationService interface {
	Create(ctx context.Context, req *request.CreateReservationRequest) (*response.ReservationResponse, error)
	Update(ctx context.Context, reservationID string, req *request.UpdateReservationRequest) (*response.ReservationResponse, error)
	Cancel(ctx context.Context, reservationID string) error
	Delete(ctx context.Context, reservationID string) error
	CheckAvailability(ctx context.Context, req *request.AvailabilityRequest) (*response.AvailabilityResponse, error)
	GetByID(ctx context.Context, reservationID string) (*response.ReservationResponse, error)
	List(ctx context.Context, date, courtID string) ([]*response.ReservationResponse, error)
}

type reservationService struct {
	db          database.PgxIface
	repo        *repository.Repository
	slotMinutes int
	weekendDays map[time.Weekday]bool
	log         *zap.Logger
}

func NewReservationService(db database.PgxIface, repo *repository.Repository, booking utils.BookingConfig, log *zap.Logger) ReservationService {
	return &reservationService{
		db:          db,
		repo:        repo,
		slotMinutes: booking.SlotMinutes,
		weekendDays: booking.WeekendSet(),
		log:         log.With(zap.String("service", "reservation")),
	}
}

// Create books a court for a customer: reservation, slot grants and payment
// land in one transaction or not at all. A uniqueness violation on the
// grant key during insert means a concurrent request won the same slots
// after our availability check passed; it surfaces as a SlotConflictError
// marked as a race.
func (s *reservationService) Create(ctx context.Context, req *request.CreateReservationRequest) (*response.ReservationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create reservation validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, utils.FormatValidationErrors(errs))
	}

	courtID, err := uuid.Parse(req.CourtID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid court ID %s", ErrInvalidInput, req.CourtID)
	}

	createdBy := uuid.Nil
	if req.CreatedBy != "" {
		if createdBy, err = uuid.Parse(req.CreatedBy); err != nil {
			return nil, fmt.Errorf("%w: invalid creator ID %s", ErrInvalidInput, req.CreatedBy)
		}
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %s", ErrInvalidInput, req.Date)
	}

	discountKind := entity.DiscountKind(req.DiscountKind)
	if discountKind == "" {
		discountKind = entity.DiscountKindNone
	}

	origin := entity.ReservationOrigin(req.Origin)
	if origin == "" {
		origin = entity.ReservationOriginManual
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	repo := s.repo.WithTx(tx)

	court, err := repo.Court.FindByID(ctx, courtID)
	if err != nil {
		return nil, fmt.Errorf("load court: %w", err)
	}
	if court == nil {
		return nil, fmt.Errorf("%w: %s", ErrCourtNotFound, req.CourtID)
	}
	if !court.IsActive {
		return nil, fmt.Errorf("%w: %s", ErrCourtInactive, court.Name)
	}

	slots, err := GenerateSlots(req.StartTime, req.EndTime, s.slotMinutes)
	if err != nil {
		return nil, err
	}

	if !req.SkipAvailabilityCheck {
		if err := s.resolveAvailability(ctx, repo, courtID, date, slots, nil); err != nil {
			return nil, err
		}
	}

	rate := CourtRate(court, date, s.weekendDays)
	baseAmount := BaseAmount(rate, len(slots), s.slotMinutes)
	finalAmount := ApplyDiscount(baseAmount, discountKind, req.DiscountValue)

	if req.AdvancePaid > finalAmount {
		return nil, fmt.Errorf("%w: advance %d, final %d", ErrOverpayment, req.AdvancePaid, finalAmount)
	}

	now := time.Now()
	reservation := &entity.Reservation{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CourtID:       courtID,
		Sport:         req.Sport,
		Date:          date,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		SlotCount:     len(slots),
		BaseAmount:    baseAmount,
		DiscountKind:  discountKind,
		DiscountValue: req.DiscountValue,
		FinalAmount:   finalAmount,
		CreatedBy:     createdBy,
		Status:        entity.ReservationStatusActive,
		Origin:        origin,
	}

	if err := repo.Reservation.Create(ctx, reservation); err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	if err := repo.SlotGrant.CreateBatch(ctx, buildGrants(reservation, slots, now)); err != nil {
		if repository.IsUniqueViolation(err) {
			s.log.Warn("Slot grant race detected",
				zap.String("court_id", courtID.String()),
				zap.String("date", req.Date),
			)
			return nil, &SlotConflictError{Slots: slots, Race: true}
		}
		return nil, fmt.Errorf("create slot grants: %w", err)
	}

	payment := &entity.Payment{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ReservationID: reservation.ID,
		TotalAmount:   finalAmount,
		AdvancePaid:   req.AdvancePaid,
		BalanceAmount: BalanceAmount(finalAmount, req.AdvancePaid),
		Mode:          req.PaymentMode,
		Notes:         req.PaymentNotes,
		Status:        DerivePaymentStatus(req.AdvancePaid, finalAmount),
	}

	if err := repo.Payment.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit reservation: %w", err)
	}

	s.log.Info("Reservation created",
		zap.String("reservation_id", reservation.ID.String()),
		zap.String("court_id", courtID.String()),
		zap.String("date", req.Date),
		zap.Int("slot_count", len(slots)),
		zap.Int64("final_amount", finalAmount),
	)

	return response.ReservationToResponse(reservation, slots, payment), nil
}

// Update reschedules, re-prices or changes the status of a reservation.
// Availability is re-validated whenever the target status is ACTIVE and
// the schedule changed or the reservation was not previously active;
// re-activating a cancelled reservation therefore always re-checks, so
// conflicting slots cannot be silently resurrected.
func (s *reservationService) Update(ctx context.Context, reservationID string, req *request.UpdateReservationRequest) (*response.ReservationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update reservation validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(reservationID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid reservation ID %s", ErrInvalidInput, reservationID)
	}

	courtID, err := uuid.Parse(req.CourtID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid court ID %s", ErrInvalidInput, req.CourtID)
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %s", ErrInvalidInput, req.Date)
	}

	discountKind := entity.DiscountKind(req.DiscountKind)
	if discountKind == "" {
		discountKind = entity.DiscountKindNone
	}
	targetStatus := entity.ReservationStatus(req.Status)

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	repo := s.repo.WithTx(tx)

	reservation, err := repo.Reservation.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load reservation: %w", err)
	}
	if reservation == nil {
		return nil, fmt.Errorf("%w: %s", ErrReservationNotFound, reservationID)
	}

	court, err := repo.Court.FindByID(ctx, courtID)
	if err != nil {
		return nil, fmt.Errorf("load court: %w", err)
	}
	if court == nil {
		return nil, fmt.Errorf("%w: %s", ErrCourtNotFound, req.CourtID)
	}

	scheduleChanged := courtID != reservation.CourtID ||
		!date.Equal(reservation.Date) ||
		req.StartTime != reservation.StartTime ||
		req.EndTime != reservation.EndTime
	wasActive := reservation.Status == entity.ReservationStatusActive
	targetActive := targetStatus == entity.ReservationStatusActive

	reservation.CourtID = courtID
	reservation.Date = date
	reservation.StartTime = req.StartTime
	reservation.EndTime = req.EndTime

	var slots []string
	now := time.Now()

	switch {
	case targetActive && (scheduleChanged || !wasActive):
		// The only path that re-validates conflicts. Own grants are
		// excluded from the check, then replaced wholesale.
		if !court.IsActive {
			return nil, fmt.Errorf("%w: %s", ErrCourtInactive, court.Name)
		}

		slots, err = GenerateSlots(req.StartTime, req.EndTime, s.slotMinutes)
		if err != nil {
			return nil, err
		}

		if err := s.resolveAvailability(ctx, repo, courtID, date, slots, &id); err != nil {
			return nil, err
		}

		rate := CourtRate(court, date, s.weekendDays)
		reservation.BaseAmount = BaseAmount(rate, len(slots), s.slotMinutes)
		reservation.SlotCount = len(slots)

		if err := repo.SlotGrant.DeleteByReservationID(ctx, id); err != nil {
			return nil, fmt.Errorf("release old slot grants: %w", err)
		}

		if err := repo.SlotGrant.CreateBatch(ctx, buildGrants(reservation, slots, now)); err != nil {
			if repository.IsUniqueViolation(err) {
				s.log.Warn("Slot grant race detected on reschedule",
					zap.String("reservation_id", reservationID),
				)
				return nil, &SlotConflictError{Slots: slots, Race: true}
			}
			return nil, fmt.Errorf("create slot grants: %w", err)
		}

	case targetActive:
		// Schedule untouched and already active: grants stay, only the
		// final amount moves when the discount changed.
		slots, err = GenerateSlots(req.StartTime, req.EndTime, s.slotMinutes)
		if err != nil {
			return nil, err
		}

	default:
		// Cancelling or completing: the court is released immediately.
		// Amounts are still recomputed for the books when the schedule or
		// discount moved, even though no slots are held.
		if err := repo.SlotGrant.DeleteByReservationID(ctx, id); err != nil {
			return nil, fmt.Errorf("release slot grants: %w", err)
		}

		if scheduleChanged {
			generated, err := GenerateSlots(req.StartTime, req.EndTime, s.slotMinutes)
			if err != nil {
				return nil, err
			}
			rate := CourtRate(court, date, s.weekendDays)
			reservation.BaseAmount = BaseAmount(rate, len(generated), s.slotMinutes)
			reservation.SlotCount = len(generated)
		}
	}

	// Recomputing from the (possibly refreshed) base covers both the
	// discount-changed and schedule-changed bookkeeping cases.
	finalAmount := ApplyDiscount(reservation.BaseAmount, discountKind, req.DiscountValue)

	if req.AdvancePaid > finalAmount {
		return nil, fmt.Errorf("%w: advance %d, final %d", ErrOverpayment, req.AdvancePaid, finalAmount)
	}

	reservation.DiscountKind = discountKind
	reservation.DiscountValue = req.DiscountValue
	reservation.FinalAmount = finalAmount
	reservation.Status = targetStatus
	reservation.UpdatedAt = now

	if err := repo.Reservation.Update(ctx, reservation); err != nil {
		return nil, fmt.Errorf("update reservation: %w", err)
	}

	payment, err := repo.Payment.FindByReservationID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load payment: %w", err)
	}
	if payment == nil {
		return nil, fmt.Errorf("payment for reservation %s not found", reservationID)
	}

	payment.TotalAmount = finalAmount
	payment.AdvancePaid = req.AdvancePaid
	payment.BalanceAmount = BalanceAmount(finalAmount, req.AdvancePaid)
	payment.Mode = req.PaymentMode
	payment.Notes = req.PaymentNotes
	payment.UpdatedAt = now
	if req.PaymentStatus != "" {
		payment.Status = entity.PaymentStatus(req.PaymentStatus)
	} else {
		payment.Status = DerivePaymentStatus(req.AdvancePaid, finalAmount)
	}

	if err := repo.Payment.Update(ctx, payment); err != nil {
		return nil, fmt.Errorf("update payment: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit reservation update: %w", err)
	}

	s.log.Info("Reservation updated",
		zap.String("reservation_id", reservationID),
		zap.String("status", string(targetStatus)),
		zap.Bool("schedule_changed", scheduleChanged),
		zap.Int64("final_amount", finalAmount),
	)

	if !targetActive {
		slots = nil
	}
	return response.ReservationToResponse(reservation, slots, payment), nil
}

// Cancel flips the reservation to CANCELLED and releases its slots while
// keeping the reservation and payment rows for history.
func (s *reservationService) Cancel(ctx context.Context, reservationID string) error {
	id, err := uuid.Parse(reservationID)
	if err != nil {
		return fmt.Errorf("%w: invalid reservation ID %s", ErrInvalidInput, reservationID)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	repo := s.repo.WithTx(tx)

	reservation, err := repo.Reservation.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load reservation: %w", err)
	}
	if reservation == nil {
		return fmt.Errorf("%w: %s", ErrReservationNotFound, reservationID)
	}

	if err := repo.SlotGrant.DeleteByReservationID(ctx, id); err != nil {
		return fmt.Errorf("release slot grants: %w", err)
	}

	if err := repo.Reservation.UpdateStatus(ctx, id, entity.ReservationStatusCancelled); err != nil {
		return fmt.Errorf("update reservation status: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit cancellation: %w", err)
	}

	s.log.Info("Reservation cancelled",
		zap.String("reservation_id", reservationID),
		zap.String("customer", reservation.CustomerName),
	)

	return nil
}

// Delete removes the reservation, its slot grants and its payment entirely.
func (s *reservationService) Delete(ctx context.Context, reservationID string) error {
	id, err := uuid.Parse(reservationID)
	if err != nil {
		return fmt.Errorf("%w: invalid reservation ID %s", ErrInvalidInput, reservationID)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	repo := s.repo.WithTx(tx)

	reservation, err := repo.Reservation.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load reservation: %w", err)
	}
	if reservation == nil {
		return fmt.Errorf("%w: %s", ErrReservationNotFound, reservationID)
	}

	if err := repo.SlotGrant.DeleteByReservationID(ctx, id); err != nil {
		return fmt.Errorf("delete slot grants: %w", err)
	}

	if err := repo.Payment.DeleteByReservationID(ctx, id); err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}

	if err := repo.Reservation.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete reservation: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit deletion: %w", err)
	}

	s.log.Info("Reservation hard-deleted", zap.String("reservation_id", reservationID))
	return nil
}

// CheckAvailability reports whether a range is free without mutating
// anything; zombie grants are reported as available but left in place.
func (s *reservationService) CheckAvailability(ctx context.Context, req *request.AvailabilityRequest) (*response.AvailabilityResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, utils.FormatValidationErrors(errs))
	}

	courtID, err := uuid.Parse(req.CourtID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid court ID %s", ErrInvalidInput, req.CourtID)
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %s", ErrInvalidInput, req.Date)
	}

	court, err := s.repo.Court.FindByID(ctx, courtID)
	if err != nil {
		return nil, fmt.Errorf("load court: %w", err)
	}
	if court == nil {
		return nil, fmt.Errorf("%w: %s", ErrCourtNotFound, req.CourtID)
	}

	slots, err := GenerateSlots(req.StartTime, req.EndTime, s.slotMinutes)
	if err != nil {
		return nil, err
	}

	grants, err := s.repo.SlotGrant.FindWithOwnerStatus(ctx, courtID, date, slots)
	if err != nil {
		return nil, fmt.Errorf("load slot grants: %w", err)
	}

	part := partitionGrants(grants, nil)
	conflicts := part.conflictLabels
	if conflicts == nil {
		conflicts = []string{}
	}

	return &response.AvailabilityResponse{
		Available:        len(conflicts) == 0,
		ConflictingSlots: conflicts,
	}, nil
}

func (s *reservationService) GetByID(ctx context.Context, reservationID string) (*response.ReservationResponse, error) {
	id, err := uuid.Parse(reservationID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid reservation ID %s", ErrInvalidInput, reservationID)
	}

	reservation, err := s.repo.Reservation.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load reservation: %w", err)
	}
	if reservation == nil {
		return nil, fmt.Errorf("%w: %s", ErrReservationNotFound, reservationID)
	}

	grants, err := s.repo.SlotGrant.FindByReservationID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load slot grants: %w", err)
	}
	slots := make([]string, len(grants))
	for i, grant := range grants {
		slots[i] = grant.SlotLabel
	}

	payment, err := s.repo.Payment.FindByReservationID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load payment: %w", err)
	}

	return response.ReservationToResponse(reservation, slots, payment), nil
}

func (s *reservationService) List(ctx context.Context, date, courtID string) ([]*response.ReservationResponse, error) {
	var datePtr *time.Time
	if date != "" {
		parsed, err := utils.ParseDate(date)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date %s", ErrInvalidInput, date)
		}
		datePtr = &parsed
	}

	var courtPtr *uuid.UUID
	if courtID != "" {
		parsed, err := uuid.Parse(courtID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid court ID %s", ErrInvalidInput, courtID)
		}
		courtPtr = &parsed
	}

	reservations, err := s.repo.Reservation.FindByFilter(ctx, datePtr, courtPtr)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	results := make([]*response.ReservationResponse, len(reservations))
	for i, reservation := range reservations {
		payment, err := s.repo.Payment.FindByReservationID(ctx, reservation.ID)
		if err != nil {
			return nil, fmt.Errorf("load payment: %w", err)
		}
		results[i] = response.ReservationToResponse(reservation, nil, payment)
	}

	return results, nil
}

func buildGrants(reservation *entity.Reservation, slots []string, now time.Time) []*entity.SlotGrant {
	grants := make([]*entity.SlotGrant, len(slots))
	for i, label := range slots {
		grants[i] = &entity.SlotGrant{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			CourtID:       reservation.CourtID,
			Date:          reservation.Date,
			SlotLabel:     label,
			ReservationID: reservation.ID,
		}
	}
	return grants
}
