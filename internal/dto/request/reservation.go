package request

type CreateReservationRequest struct {
	CustomerName  string  `json:"customer_name" validate:"required,max=120"`
	CustomerPhone string  `json:"customer_phone" validate:"required,max=20"`
	CourtID       string  `json:"court_id" validate:"required,uuid4"`
	Sport         string  `json:"sport" validate:"required,max=60"`
	Date          string  `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime     string  `json:"start_time" validate:"required"`
	EndTime       string  `json:"end_time" validate:"required"`
	DiscountKind  string  `json:"discount_kind" validate:"omitempty,oneof=NONE FLAT PERCENT"`
	DiscountValue float64 `json:"discount_value" validate:"omitempty,min=0"`
	AdvancePaid   int64   `json:"advance_paid" validate:"min=0"`
	PaymentMode   string  `json:"payment_mode" validate:"omitempty,max=40"`
	PaymentNotes  string  `json:"payment_notes" validate:"omitempty,max=500"`
	CreatedBy     string  `json:"created_by" validate:"omitempty,uuid4"`
	Origin        string  `json:"origin" validate:"omitempty,oneof=MANUAL RECURRING"`

	// Batch/recurring callers that pre-validated availability elsewhere
	// may skip the optimistic check; the unique key still backstops them.
	SkipAvailabilityCheck bool `json:"skip_availability_check"`
}

type UpdateReservationRequest struct {
	CourtID       string  `json:"court_id" validate:"required,uuid4"`
	Date          string  `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime     string  `json:"start_time" validate:"required"`
	EndTime       string  `json:"end_time" validate:"required"`
	DiscountKind  string  `json:"discount_kind" validate:"omitempty,oneof=NONE FLAT PERCENT"`
	DiscountValue float64 `json:"discount_value" validate:"omitempty,min=0"`
	Status        string  `json:"status" validate:"required,oneof=ACTIVE CANCELLED COMPLETED"`
	AdvancePaid   int64   `json:"advance_paid" validate:"min=0"`
	PaymentMode   string  `json:"payment_mode" validate:"omitempty,max=40"`
	PaymentNotes  string  `json:"payment_notes" validate:"omitempty,max=500"`

	// Optional manual override; when empty the status is derived from the
	// advance/total amounts.
	PaymentStatus string `json:"payment_status" validate:"omitempty,oneof=PENDING PARTIAL PAID"`
}

type AvailabilityRequest struct {
	CourtID   string `json:"court_id" validate:"required,uuid4"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}
