package usecase

import (
	"math"
	"time"

	"court-booking/internal/data/entity"
)

// CourtRate picks the hourly rate for a date under the configured
// weekend-day set.
func CourtRate(court *entity.Court, date time.Time, weekendDays map[time.Weekday]bool) int64 {
	if weekendDays[date.Weekday()] {
		return court.WeekendRate
	}
	return court.WeekdayRate
}

// BaseAmount computes hourly_rate x slot_count x (granularity/60) with
// ceiling division so fractional currency units never undercharge.
func BaseAmount(hourlyRate int64, slotCount, granularityMinutes int) int64 {
	totalMinutes := int64(slotCount) * int64(granularityMinutes)
	return (hourlyRate*totalMinutes + 59) / 60
}

// ApplyDiscount reduces the base amount by a flat value or a percentage,
// clamped at zero.
func ApplyDiscount(base int64, kind entity.DiscountKind, value float64) int64 {
	var final int64
	switch kind {
	case entity.DiscountKindFlat:
		final = base - int64(math.Round(value))
	case entity.DiscountKindPercent:
		final = base - int64(math.Round(float64(base)*value/100))
	default:
		final = base
	}

	if final < 0 {
		return 0
	}
	return final
}

// DerivePaymentStatus maps advance/total onto the payment state. Callers
// holding an explicit override store that instead.
func DerivePaymentStatus(advancePaid, totalAmount int64) entity.PaymentStatus {
	switch {
	case advancePaid <= 0:
		return entity.PaymentStatusPending
	case advancePaid >= totalAmount:
		return entity.PaymentStatusPaid
	default:
		return entity.PaymentStatusPartial
	}
}

// BalanceAmount is the remaining due, never negative.
func BalanceAmount(totalAmount, advancePaid int64) int64 {
	if advancePaid >= totalAmount {
		return 0
	}
	return totalAmount - advancePaid
}
