package entity

type Court struct {
	Base
	Name        string `db:"name"`
	Sport       string `db:"sport"`
	IsActive    bool   `db:"is_active"`
	WeekdayRate int64  `db:"weekday_rate"` // per hour
	WeekendRate int64  `db:"weekend_rate"` // per hour
}
