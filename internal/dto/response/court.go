package response

import (
	"time"

	"court-booking/internal/data/entity"
)

type CourtResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Sport       string    `json:"sport"`
	IsActive    bool      `json:"is_active"`
	WeekdayRate int64     `json:"weekday_rate"`
	WeekendRate int64     `json:"weekend_rate"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func CourtToResponse(court *entity.Court) *CourtResponse {
	return &CourtResponse{
		ID:          court.ID.String(),
		Name:        court.Name,
		Sport:       court.Sport,
		IsActive:    court.IsActive,
		WeekdayRate: court.WeekdayRate,
		WeekendRate: court.WeekendRate,
		CreatedAt:   court.CreatedAt,
		UpdatedAt:   court.UpdatedAt,
	}
}
