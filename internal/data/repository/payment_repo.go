package repository

import (
	"context"
	"fmt"

	"court-booking/internal/data/entity"
	"court-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindByReservationID(ctx context.Context, reservationID uuid.UUID) (*entity.Payment, error)
	Update(ctx context.Context, payment *entity.Payment) error
	DeleteByReservationID(ctx context.Context, reservationID uuid.UUID) error

	WithTx(tx database.Tx) PaymentRepository
}

type paymentRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewPaymentRepository(db database.Querier, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

func (r *paymentRepository) WithTx(tx database.Tx) PaymentRepository {
	return &paymentRepository{db: tx, log: r.log}
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	query := `
		INSERT INTO payments (id, reservation_id, total_amount, advance_paid, balance_amount,
			mode, notes, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		payment.ID,
		payment.ReservationID,
		payment.TotalAmount,
		payment.AdvancePaid,
		payment.BalanceAmount,
		payment.Mode,
		payment.Notes,
		payment.Status,
		payment.CreatedAt,
		payment.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("reservation_id", payment.ReservationID.String()),
		)
		return fmt.Errorf("create payment for reservation %s: %w", payment.ReservationID.String(), err)
	}

	return nil
}

func (r *paymentRepository) FindByReservationID(ctx context.Context, reservationID uuid.UUID) (*entity.Payment, error) {
	query := `
		SELECT id, reservation_id, total_amount, advance_paid, balance_amount,
			mode, notes, status, created_at, updated_at
		FROM payments
		WHERE reservation_id = $1
	`

	var payment entity.Payment
	err := r.db.QueryRow(ctx, query, reservationID).Scan(
		&payment.ID,
		&payment.ReservationID,
		&payment.TotalAmount,
		&payment.AdvancePaid,
		&payment.BalanceAmount,
		&payment.Mode,
		&payment.Notes,
		&payment.Status,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment by reservation ID",
			zap.Error(err),
			zap.String("reservation_id", reservationID.String()),
		)
		return nil, fmt.Errorf("find payment by reservation ID %s: %w", reservationID.String(), err)
	}

	return &payment, nil
}

func (r *paymentRepository) Update(ctx context.Context, payment *entity.Payment) error {
	query := `
		UPDATE payments
		SET total_amount = $2, advance_paid = $3, balance_amount = $4,
		    mode = $5, notes = $6, status = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		payment.ID,
		payment.TotalAmount,
		payment.AdvancePaid,
		payment.BalanceAmount,
		payment.Mode,
		payment.Notes,
		payment.Status,
		payment.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update payment",
			zap.Error(err),
			zap.String("payment_id", payment.ID.String()),
		)
		return fmt.Errorf("update payment %s: %w", payment.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("payment %s not found", payment.ID.String())
	}

	return nil
}

func (r *paymentRepository) DeleteByReservationID(ctx context.Context, reservationID uuid.UUID) error {
	query := `DELETE FROM payments WHERE reservation_id = $1`

	_, err := r.db.Exec(ctx, query, reservationID)
	if err != nil {
		r.log.Error("Failed to delete payment by reservation ID",
			zap.Error(err),
			zap.String("reservation_id", reservationID.String()),
		)
		return fmt.Errorf("delete payment by reservation ID %s: %w", reservationID.String(), err)
	}

	return nil
}
