package repository

import (
	"context"
	"fmt"
	"time"

	"court-booking/internal/data/entity"
	"court-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SlotGrantRepository interface {
	CreateBatch(ctx context.Context, grants []*entity.SlotGrant) error
	FindByReservationID(ctx context.Context, reservationID uuid.UUID) ([]*entity.SlotGrant, error)
	FindWithOwnerStatus(ctx context.Context, courtID uuid.UUID, date time.Time, labels []string) ([]*entity.SlotGrantOwner, error)
	DeleteByReservationID(ctx context.Context, reservationID uuid.UUID) error
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) error

	WithTx(tx database.Tx) SlotGrantRepository
}

type slotGrantRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewSlotGrantRepository(db database.Querier, log *zap.Logger) SlotGrantRepository {
	return &slotGrantRepository{
		db:  db,
		log: log.With(zap.String("repository", "slot_grant")),
	}
}

func (r *slotGrantRepository) WithTx(tx database.Tx) SlotGrantRepository {
	return &slotGrantRepository{db: tx, log: r.log}
}

func (r *slotGrantRepository) CreateBatch(ctx context.Context, grants []*entity.SlotGrant) error {
	if len(grants) == 0 {
		return nil
	}

	query := `
		INSERT INTO slot_grants (id, court_id, date, slot_label, reservation_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	for _, grant := range grants {
		_, err := r.db.Exec(ctx, query,
			grant.ID,
			grant.CourtID,
			grant.Date,
			grant.SlotLabel,
			grant.ReservationID,
			grant.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to create slot grant",
				zap.Error(err),
				zap.String("court_id", grant.CourtID.String()),
				zap.String("slot_label", grant.SlotLabel),
				zap.String("reservation_id", grant.ReservationID.String()),
			)
			return fmt.Errorf("create slot grant %s for reservation %s: %w",
				grant.SlotLabel, grant.ReservationID.String(), err)
		}
	}

	return nil
}

func (r *slotGrantRepository) FindByReservationID(ctx context.Context, reservationID uuid.UUID) ([]*entity.SlotGrant, error) {
	query := `
		SELECT id, court_id, date, slot_label, reservation_id, created_at
		FROM slot_grants
		WHERE reservation_id = $1
		ORDER BY slot_label
	`

	rows, err := r.db.Query(ctx, query, reservationID)
	if err != nil {
		r.log.Error("Failed to find slot grants by reservation ID",
			zap.Error(err),
			zap.String("reservation_id", reservationID.String()),
		)
		return nil, fmt.Errorf("find slot grants by reservation ID %s: %w", reservationID.String(), err)
	}
	defer rows.Close()

	var grants []*entity.SlotGrant
	for rows.Next() {
		var grant entity.SlotGrant
		err := rows.Scan(
			&grant.ID,
			&grant.CourtID,
			&grant.Date,
			&grant.SlotLabel,
			&grant.ReservationID,
			&grant.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan slot grant row", zap.Error(err))
			return nil, fmt.Errorf("scan slot grant row: %w", err)
		}
		grants = append(grants, &grant)
	}

	return grants, nil
}

// FindWithOwnerStatus loads every grant claiming one of the candidate slots
// together with its owning reservation's status. The join is explicit: a
// grant row alone cannot tell "slot in use" from "stale row", only the
// owner's status can.
func (r *slotGrantRepository) FindWithOwnerStatus(ctx context.Context, courtID uuid.UUID, date time.Time, labels []string) ([]*entity.SlotGrantOwner, error) {
	query := `
		SELECT sg.id, sg.slot_label, sg.reservation_id, r.status
		FROM slot_grants sg
		LEFT JOIN reservations r ON sg.reservation_id = r.id
		WHERE sg.court_id = $1 AND sg.date = $2 AND sg.slot_label = ANY($3)
	`

	rows, err := r.db.Query(ctx, query, courtID, date, labels)
	if err != nil {
		r.log.Error("Failed to find slot grants with owner status",
			zap.Error(err),
			zap.String("court_id", courtID.String()),
			zap.Time("date", date),
		)
		return nil, fmt.Errorf("find slot grants with owner status for court %s: %w", courtID.String(), err)
	}
	defer rows.Close()

	var grants []*entity.SlotGrantOwner
	for rows.Next() {
		var grant entity.SlotGrantOwner
		err := rows.Scan(
			&grant.GrantID,
			&grant.SlotLabel,
			&grant.ReservationID,
			&grant.OwnerStatus,
		)
		if err != nil {
			r.log.Error("Failed to scan slot grant owner row", zap.Error(err))
			return nil, fmt.Errorf("scan slot grant owner row: %w", err)
		}
		grants = append(grants, &grant)
	}

	return grants, nil
}

// DeleteByReservationID releases every slot held by a reservation.
// Deleting zero rows is not an error.
func (r *slotGrantRepository) DeleteByReservationID(ctx context.Context, reservationID uuid.UUID) error {
	query := `DELETE FROM slot_grants WHERE reservation_id = $1`

	_, err := r.db.Exec(ctx, query, reservationID)
	if err != nil {
		r.log.Error("Failed to delete slot grants by reservation ID",
			zap.Error(err),
			zap.String("reservation_id", reservationID.String()),
		)
		return fmt.Errorf("delete slot grants by reservation ID %s: %w", reservationID.String(), err)
	}

	return nil
}

// DeleteByIDs removes specific grant rows, used for zombie cleanup.
func (r *slotGrantRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	query := `DELETE FROM slot_grants WHERE id = ANY($1)`

	_, err := r.db.Exec(ctx, query, ids)
	if err != nil {
		r.log.Error("Failed to delete slot grants by IDs",
			zap.Error(err),
			zap.Int("count", len(ids)),
		)
		return fmt.Errorf("delete %d slot grants: %w", len(ids), err)
	}

	return nil
}
