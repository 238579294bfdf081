package repository

import (
	"context"
	"fmt"
	"time"

	"court-booking/internal/data/entity"
	"court-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ReservationRepository interface {
	Create(ctx context.Context, reservation *entity.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)
	FindByFilter(ctx context.Context, date *time.Time, courtID *uuid.UUID) ([]*entity.Reservation, error)
	Update(ctx context.Context, reservation *entity.Reservation) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ReservationStatus) error
	Delete(ctx context.Context, id uuid.UUID) error

	WithTx(tx database.Tx) ReservationRepository
}

type reservationRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewReservationRepository(db database.Querier, log *zap.Logger) ReservationRepository {
	return &reservationRepository{
		db:  db,
		log: log.With(zap.String("repository", "reservation")),
	}
}

func (r *reservationRepository) WithTx(tx database.Tx) ReservationRepository {
	return &reservationRepository{db: tx, log: r.log}
}

const reservationColumns = `id, customer_name, customer_phone, court_id, sport, date,
		start_time, end_time, slot_count, base_amount, discount_kind, discount_value,
		final_amount, created_by, status, origin, created_at, updated_at`

func scanReservation(row pgx.Row) (*entity.Reservation, error) {
	var res entity.Reservation
	err := row.Scan(
		&res.ID,
		&res.CustomerName,
		&res.CustomerPhone,
		&res.CourtID,
		&res.Sport,
		&res.Date,
		&res.StartTime,
		&res.EndTime,
		&res.SlotCount,
		&res.BaseAmount,
		&res.DiscountKind,
		&res.DiscountValue,
		&res.FinalAmount,
		&res.CreatedBy,
		&res.Status,
		&res.Origin,
		&res.CreatedAt,
		&res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *reservationRepository) Create(ctx context.Context, reservation *entity.Reservation) error {
	query := `
		INSERT INTO reservations (id, customer_name, customer_phone, court_id, sport, date,
			start_time, end_time, slot_count, base_amount, discount_kind, discount_value,
			final_amount, created_by, status, origin, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`

	_, err := r.db.Exec(ctx, query,
		reservation.ID,
		reservation.CustomerName,
		reservation.CustomerPhone,
		reservation.CourtID,
		reservation.Sport,
		reservation.Date,
		reservation.StartTime,
		reservation.EndTime,
		reservation.SlotCount,
		reservation.BaseAmount,
		reservation.DiscountKind,
		reservation.DiscountValue,
		reservation.FinalAmount,
		reservation.CreatedBy,
		reservation.Status,
		reservation.Origin,
		reservation.CreatedAt,
		reservation.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create reservation",
			zap.Error(err),
			zap.String("customer", reservation.CustomerName),
			zap.String("court_id", reservation.CourtID.String()),
		)
		return fmt.Errorf("create reservation for %s: %w", reservation.CustomerName, err)
	}

	return nil
}

func (r *reservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

	reservation, err := scanReservation(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find reservation by ID",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
		)
		return nil, fmt.Errorf("find reservation by ID %s: %w", id.String(), err)
	}

	return reservation, nil
}

func (r *reservationRepository) FindByFilter(ctx context.Context, date *time.Time, courtID *uuid.UUID) ([]*entity.Reservation, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM reservations
		WHERE ($1::date IS NULL OR date = $1)
		  AND ($2::uuid IS NULL OR court_id = $2)
		ORDER BY date, start_time
	`

	rows, err := r.db.Query(ctx, query, date, courtID)
	if err != nil {
		r.log.Error("Failed to find reservations by filter", zap.Error(err))
		return nil, fmt.Errorf("find reservations by filter: %w", err)
	}
	defer rows.Close()

	var reservations []*entity.Reservation
	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			r.log.Error("Failed to scan reservation row", zap.Error(err))
			return nil, fmt.Errorf("scan reservation row: %w", err)
		}
		reservations = append(reservations, reservation)
	}

	return reservations, nil
}

func (r *reservationRepository) Update(ctx context.Context, reservation *entity.Reservation) error {
	query := `
		UPDATE reservations
		SET customer_name = $2, customer_phone = $3, court_id = $4, sport = $5, date = $6,
		    start_time = $7, end_time = $8, slot_count = $9, base_amount = $10,
		    discount_kind = $11, discount_value = $12, final_amount = $13,
		    status = $14, updated_at = $15
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		reservation.ID,
		reservation.CustomerName,
		reservation.CustomerPhone,
		reservation.CourtID,
		reservation.Sport,
		reservation.Date,
		reservation.StartTime,
		reservation.EndTime,
		reservation.SlotCount,
		reservation.BaseAmount,
		reservation.DiscountKind,
		reservation.DiscountValue,
		reservation.FinalAmount,
		reservation.Status,
		reservation.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update reservation",
			zap.Error(err),
			zap.String("reservation_id", reservation.ID.String()),
		)
		return fmt.Errorf("update reservation %s: %w", reservation.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reservation %s not found", reservation.ID.String())
	}

	return nil
}

func (r *reservationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ReservationStatus) error {
	query := `UPDATE reservations SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update reservation status",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update reservation %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reservation %s not found", id.String())
	}

	return nil
}

func (r *reservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM reservations WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete reservation",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
		)
		return fmt.Errorf("delete reservation %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reservation %s not found", id.String())
	}

	r.log.Info("Reservation deleted", zap.String("reservation_id", id.String()))
	return nil
}
