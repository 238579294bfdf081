package usecase

import (
	"context"
	"testing"

	"court-booking/internal/data/entity"
	"court-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCourtCreate(t *testing.T) {
	repo := newTestRepo()

	var created *entity.Court
	repo.Court.(*mockCourtRepo).CreateFn = func(ctx context.Context, court *entity.Court) error {
		created = court
		return nil
	}

	service := NewCourtService(repo, zap.NewNop())
	result, err := service.Create(context.Background(), &request.CreateCourtRequest{
		Name:        "Lapangan A",
		Sport:       "badminton",
		WeekdayRate: 800,
		WeekendRate: 1000,
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.True(t, created.IsActive)
	assert.Equal(t, int64(800), created.WeekdayRate)
	assert.True(t, result.IsActive)
}

func TestCourtUpdateDeactivates(t *testing.T) {
	court := testCourt()
	repo := newTestRepo()

	repo.Court.(*mockCourtRepo).FindByIDFn = func(ctx context.Context, id uuid.UUID) (*entity.Court, error) {
		return court, nil
	}

	var updated *entity.Court
	repo.Court.(*mockCourtRepo).UpdateFn = func(ctx context.Context, c *entity.Court) error {
		updated = c
		return nil
	}

	inactive := false
	service := NewCourtService(repo, zap.NewNop())
	_, err := service.Update(context.Background(), court.ID.String(), &request.UpdateCourtRequest{
		Name:        court.Name,
		Sport:       court.Sport,
		IsActive:    &inactive,
		WeekdayRate: 900,
		WeekendRate: 1100,
	})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.False(t, updated.IsActive)
	assert.Equal(t, int64(900), updated.WeekdayRate)
}

func TestCourtGetByIDNotFound(t *testing.T) {
	repo := newTestRepo()
	repo.Court.(*mockCourtRepo).FindByIDFn = func(ctx context.Context, id uuid.UUID) (*entity.Court, error) {
		return nil, nil
	}

	service := NewCourtService(repo, zap.NewNop())
	_, err := service.GetByID(context.Background(), uuid.New().String())

	require.ErrorIs(t, err, ErrCourtNotFound)
}

func TestCourtList(t *testing.T) {
	repo := newTestRepo()
	repo.Court.(*mockCourtRepo).FindAllFn = func(ctx context.Context, activeOnly bool) ([]*entity.Court, error) {
		assert.True(t, activeOnly)
		return []*entity.Court{testCourt(), testCourt()}, nil
	}

	service := NewCourtService(repo, zap.NewNop())
	results, err := service.List(context.Background(), true)

	require.NoError(t, err)
	assert.Len(t, results, 2)
}
