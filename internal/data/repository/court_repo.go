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

type CourtRepository interface {
	Create(ctx context.Context, court *entity.Court) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Court, error)
	FindAll(ctx context.Context, activeOnly bool) ([]*entity.Court, error)
	Update(ctx context.Context, court *entity.Court) error

	WithTx(tx database.Tx) CourtRepository
}

type courtRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewCourtRepository(db database.Querier, log *zap.Logger) CourtRepository {
	return &courtRepository{
		db:  db,
		log: log.With(zap.String("repository", "court")),
	}
}

func (r *courtRepository) WithTx(tx database.Tx) CourtRepository {
	return &courtRepository{db: tx, log: r.log}
}

func (r *courtRepository) Create(ctx context.Context, court *entity.Court) error {
	query := `
		INSERT INTO courts (id, name, sport, is_active, weekday_rate, weekend_rate, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		court.ID,
		court.Name,
		court.Sport,
		court.IsActive,
		court.WeekdayRate,
		court.WeekendRate,
		court.CreatedAt,
		court.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create court",
			zap.Error(err),
			zap.String("name", court.Name),
		)
		return fmt.Errorf("create court %s: %w", court.Name, err)
	}

	return nil
}

func (r *courtRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Court, error) {
	query := `
		SELECT id, name, sport, is_active, weekday_rate, weekend_rate, created_at, updated_at
		FROM courts
		WHERE id = $1
	`

	var court entity.Court
	err := r.db.QueryRow(ctx, query, id).Scan(
		&court.ID,
		&court.Name,
		&court.Sport,
		&court.IsActive,
		&court.WeekdayRate,
		&court.WeekendRate,
		&court.CreatedAt,
		&court.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find court by ID",
			zap.Error(err),
			zap.String("court_id", id.String()),
		)
		return nil, fmt.Errorf("find court by ID %s: %w", id.String(), err)
	}

	return &court, nil
}

func (r *courtRepository) FindAll(ctx context.Context, activeOnly bool) ([]*entity.Court, error) {
	query := `
		SELECT id, name, sport, is_active, weekday_rate, weekend_rate, created_at, updated_at
		FROM courts
	`
	if activeOnly {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find courts", zap.Error(err))
		return nil, fmt.Errorf("find courts: %w", err)
	}
	defer rows.Close()

	var courts []*entity.Court
	for rows.Next() {
		var court entity.Court
		err := rows.Scan(
			&court.ID,
			&court.Name,
			&court.Sport,
			&court.IsActive,
			&court.WeekdayRate,
			&court.WeekendRate,
			&court.CreatedAt,
			&court.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan court row", zap.Error(err))
			return nil, fmt.Errorf("scan court row: %w", err)
		}
		courts = append(courts, &court)
	}

	return courts, nil
}

func (r *courtRepository) Update(ctx context.Context, court *entity.Court) error {
	query := `
		UPDATE courts
		SET name = $2, sport = $3, is_active = $4, weekday_rate = $5,
		    weekend_rate = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		court.ID,
		court.Name,
		court.Sport,
		court.IsActive,
		court.WeekdayRate,
		court.WeekendRate,
		court.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update court",
			zap.Error(err),
			zap.String("court_id", court.ID.String()),
		)
		return fmt.Errorf("update court %s: %w", court.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("court %s not found", court.ID.String())
	}

	return nil
}
