package request

type CreateCourtRequest struct {
	Name        string `json:"name" validate:"required,max=120"`
	Sport       string `json:"sport" validate:"required,max=60"`
	WeekdayRate int64  `json:"weekday_rate" validate:"required,min=0"`
	WeekendRate int64  `json:"weekend_rate" validate:"required,min=0"`
}

type UpdateCourtRequest struct {
	Name        string `json:"name" validate:"required,max=120"`
	Sport       string `json:"sport" validate:"required,max=60"`
	IsActive    *bool  `json:"is_active" validate:"required"`
	WeekdayRate int64  `json:"weekday_rate" validate:"required,min=0"`
	WeekendRate int64  `json:"weekend_rate" validate:"required,min=0"`
}
