package usecase

import (
	"context"
	"fmt"
	"time"

	"court-booking/internal/data/entity"
	"court-booking/internal/data/repository"
	"court-booking/internal/dto/request"
	"court-booking/internal/dto/response"
	"court-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CourtService interface {
	Create(ctx context.Context, req *request.CreateCourtRequest) (*response.CourtResponse, error)
	GetByID(ctx context.Context, courtID string) (*response.CourtResponse, error)
	List(ctx context.Context, activeOnly bool) ([]*response.CourtResponse, error)
	Update(ctx context.Context, courtID string, req *request.UpdateCourtRequest) (*response.CourtResponse, error)
}

type courtService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCourtService(repo *repository.Repository, log *zap.Logger) CourtService {
	return &courtService{
		repo: repo,
		log:  log.With(zap.String("service", "court")),
	}
}

func (s *courtService) Create(ctx context.Context, req *request.CreateCourtRequest) (*response.CourtResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create court validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	court := &entity.Court{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Sport:       req.Sport,
		IsActive:    true,
		WeekdayRate: req.WeekdayRate,
		WeekendRate: req.WeekendRate,
	}

	if err := s.repo.Court.Create(ctx, court); err != nil {
		return nil, fmt.Errorf("create court: %w", err)
	}

	s.log.Info("Court created",
		zap.String("court_id", court.ID.String()),
		zap.String("name", court.Name),
	)

	return response.CourtToResponse(court), nil
}

func (s *courtService) GetByID(ctx context.Context, courtID string) (*response.CourtResponse, error) {
	id, err := uuid.Parse(courtID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid court ID %s", ErrInvalidInput, courtID)
	}

	court, err := s.repo.Court.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load court: %w", err)
	}
	if court == nil {
		return nil, fmt.Errorf("%w: %s", ErrCourtNotFound, courtID)
	}

	return response.CourtToResponse(court), nil
}

func (s *courtService) List(ctx context.Context, activeOnly bool) ([]*response.CourtResponse, error) {
	courts, err := s.repo.Court.FindAll(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list courts: %w", err)
	}

	results := make([]*response.CourtResponse, len(courts))
	for i, court := range courts {
		results[i] = response.CourtToResponse(court)
	}

	return results, nil
}

func (s *courtService) Update(ctx context.Context, courtID string, req *request.UpdateCourtRequest) (*response.CourtResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update court validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(courtID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid court ID %s", ErrInvalidInput, courtID)
	}

	court, err := s.repo.Court.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load court: %w", err)
	}
	if court == nil {
		return nil, fmt.Errorf("%w: %s", ErrCourtNotFound, courtID)
	}

	court.Name = req.Name
	court.Sport = req.Sport
	court.IsActive = *req.IsActive
	court.WeekdayRate = req.WeekdayRate
	court.WeekendRate = req.WeekendRate
	court.UpdatedAt = time.Now()

	if err := s.repo.Court.Update(ctx, court); err != nil {
		return nil, fmt.Errorf("update court: %w", err)
	}

	s.log.Info("Court updated",
		zap.String("court_id", courtID),
		zap.Bool("is_active", court.IsActive),
	)

	return response.CourtToResponse(court), nil
}
