package usecase

import (
	"context"
	"errors"
	"time"

	"court-booking/internal/data/entity"
	"court-booking/internal/data/repository"
	"court-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// mockTx records transaction outcomes so tests can assert nothing is
// committed on the failure paths.
type mockTx struct {
	committed  bool
	rolledBack bool
}

func (m *mockTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}

func (m *mockTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

func (m *mockTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errors.New("not implemented")
}

func (m *mockTx) Commit(ctx context.Context) error {
	m.committed = true
	return nil
}

func (m *mockTx) Rollback(ctx context.Context) error {
	if m.committed {
		return pgx.ErrTxClosed
	}
	m.rolledBack = true
	return nil
}

type mockDB struct {
	tx       *mockTx
	beginErr error
}

func (m *mockDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}

func (m *mockDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

func (m *mockDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errors.New("not implemented")
}

func (m *mockDB) Begin(ctx context.Context) (database.Tx, error) {
	if m.beginErr != nil {
		return nil, m.beginErr
	}
	if m.tx == nil {
		m.tx = &mockTx{}
	}
	return m.tx, nil
}

func (m *mockDB) Ping(ctx context.Context) error { return nil }
func (m *mockDB) Close()                         {}

type mockCourtRepo struct {
	CreateFn   func(ctx context.Context, court *entity.Court) error
	FindByIDFn func(ctx context.Context, id uuid.UUID) (*entity.Court, error)
	FindAllFn  func(ctx context.Context, activeOnly bool) ([]*entity.Court, error)
	UpdateFn   func(ctx context.Context, court *entity.Court) error
}

func (m *mockCourtRepo) Create(ctx context.Context, court *entity.Court) error {
	return m.CreateFn(ctx, court)
}

func (m *mockCourtRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Court, error) {
	return m.FindByIDFn(ctx, id)
}

func (m *mockCourtRepo) FindAll(ctx context.Context, activeOnly bool) ([]*entity.Court, error) {
	return m.FindAllFn(ctx, activeOnly)
}

func (m *mockCourtRepo) Update(ctx context.Context, court *entity.Court) error {
	return m.UpdateFn(ctx, court)
}

func (m *mockCourtRepo) WithTx(tx database.Tx) repository.CourtRepository { return m }

type mockReservationRepo struct {
	CreateFn       func(ctx context.Context, reservation *entity.Reservation) error
	FindByIDFn     func(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)
	FindByFilterFn func(ctx context.Context, date *time.Time, courtID *uuid.UUID) ([]*entity.Reservation, error)
	UpdateFn       func(ctx context.Context, reservation *entity.Reservation) error
	UpdateStatusFn func(ctx context.Context, id uuid.UUID, status entity.ReservationStatus) error
	DeleteFn       func(ctx context.Context, id uuid.UUID) error
}

func (m *mockReservationRepo) Create(ctx context.Context, reservation *entity.Reservation) error {
	return m.CreateFn(ctx, reservation)
}

func (m *mockReservationRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	return m.FindByIDFn(ctx, id)
}

func (m *mockReservationRepo) FindByFilter(ctx context.Context, date *time.Time, courtID *uuid.UUID) ([]*entity.Reservation, error) {
	return m.FindByFilterFn(ctx, date, courtID)
}

func (m *mockReservationRepo) Update(ctx context.Context, reservation *entity.Reservation) error {
	return m.UpdateFn(ctx, reservation)
}

func (m *mockReservationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ReservationStatus) error {
	return m.UpdateStatusFn(ctx, id, status)
}

func (m *mockReservationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFn(ctx, id)
}

func (m *mockReservationRepo) WithTx(tx database.Tx) repository.ReservationRepository { return m }

type mockSlotGrantRepo struct {
	CreateBatchFn           func(ctx context.Context, grants []*entity.SlotGrant) error
	FindByReservationIDFn   func(ctx context.Context, reservationID uuid.UUID) ([]*entity.SlotGrant, error)
	FindWithOwnerStatusFn   func(ctx context.Context, courtID uuid.UUID, date time.Time, labels []string) ([]*entity.SlotGrantOwner, error)
	DeleteByReservationIDFn func(ctx context.Context, reservationID uuid.UUID) error
	DeleteByIDsFn           func(ctx context.Context, ids []uuid.UUID) error
}

func (m *mockSlotGrantRepo) CreateBatch(ctx context.Context, grants []*entity.SlotGrant) error {
	return m.CreateBatchFn(ctx, grants)
}

func (m *mockSlotGrantRepo) FindByReservationID(ctx context.Context, reservationID uuid.UUID) ([]*entity.SlotGrant, error) {
	return m.FindByReservationIDFn(ctx, reservationID)
}

func (m *mockSlotGrantRepo) FindWithOwnerStatus(ctx context.Context, courtID uuid.UUID, date time.Time, labels []string) ([]*entity.SlotGrantOwner, error) {
	return m.FindWithOwnerStatusFn(ctx, courtID, date, labels)
}

func (m *mockSlotGrantRepo) DeleteByReservationID(ctx context.Context, reservationID uuid.UUID) error {
	return m.DeleteByReservationIDFn(ctx, reservationID)
}

func (m *mockSlotGrantRepo) DeleteByIDs(ctx context.Context, ids []uuid.UUID) error {
	return m.DeleteByIDsFn(ctx, ids)
}

func (m *mockSlotGrantRepo) WithTx(tx database.Tx) repository.SlotGrantRepository { return m }

type mockPaymentRepo struct {
	CreateFn                func(ctx context.Context, payment *entity.Payment) error
	FindByReservationIDFn   func(ctx context.Context, reservationID uuid.UUID) (*entity.Payment, error)
	UpdateFn                func(ctx context.Context, payment *entity.Payment) error
	DeleteByReservationIDFn func(ctx context.Context, reservationID uuid.UUID) error
}

func (m *mockPaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	return m.CreateFn(ctx, payment)
}

func (m *mockPaymentRepo) FindByReservationID(ctx context.Context, reservationID uuid.UUID) (*entity.Payment, error) {
	return m.FindByReservationIDFn(ctx, reservationID)
}

func (m *mockPaymentRepo) Update(ctx context.Context, payment *entity.Payment) error {
	return m.UpdateFn(ctx, payment)
}

func (m *mockPaymentRepo) DeleteByReservationID(ctx context.Context, reservationID uuid.UUID) error {
	return m.DeleteByReservationIDFn(ctx, reservationID)
}

func (m *mockPaymentRepo) WithTx(tx database.Tx) repository.PaymentRepository { return m }
