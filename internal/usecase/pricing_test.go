package usecase

import (
	"testing"
	"time"

	"court-booking/internal/data/entity"

	"github.com/stretchr/testify/assert"
)

func TestCourtRate(t *testing.T) {
	court := &entity.Court{WeekdayRate: 800, WeekendRate: 1000}
	weekend := map[time.Weekday]bool{time.Saturday: true, time.Sunday: true}

	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	saturday := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, int64(800), CourtRate(court, monday, weekend))
	assert.Equal(t, int64(1000), CourtRate(court, saturday, weekend))

	// Friday counts as weekend when the venue says so.
	fridayWeekend := map[time.Weekday]bool{time.Friday: true, time.Saturday: true}
	friday := time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, int64(1000), CourtRate(court, friday, fridayWeekend))
	assert.Equal(t, int64(800), CourtRate(court, monday, fridayWeekend))
}

func TestBaseAmount(t *testing.T) {
	tests := []struct {
		name        string
		hourlyRate  int64
		slotCount   int
		granularity int
		expected    int64
	}{
		{name: "whole hour divides evenly", hourlyRate: 800, slotCount: 4, granularity: 15, expected: 800},
		{name: "half hour", hourlyRate: 800, slotCount: 2, granularity: 15, expected: 400},
		{name: "fractional unit rounds up", hourlyRate: 799, slotCount: 1, granularity: 15, expected: 200},
		{name: "ninety minutes", hourlyRate: 1000, slotCount: 6, granularity: 15, expected: 1500},
		{name: "coarse slots", hourlyRate: 500, slotCount: 3, granularity: 60, expected: 1500},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, BaseAmount(tc.hourlyRate, tc.slotCount, tc.granularity))
		})
	}
}

func TestApplyDiscount(t *testing.T) {
	tests := []struct {
		name     string
		base     int64
		kind     entity.DiscountKind
		value    float64
		expected int64
	}{
		{name: "no discount", base: 800, kind: entity.DiscountKindNone, value: 0, expected: 800},
		{name: "flat", base: 800, kind: entity.DiscountKindFlat, value: 100, expected: 700},
		{name: "percent", base: 800, kind: entity.DiscountKindPercent, value: 10, expected: 720},
		{name: "percent rounds to nearest", base: 999, kind: entity.DiscountKindPercent, value: 10, expected: 899},
		{name: "flat clamps at zero", base: 100, kind: entity.DiscountKindFlat, value: 250, expected: 0},
		{name: "full percent", base: 800, kind: entity.DiscountKindPercent, value: 100, expected: 0},
		{name: "unknown kind keeps base", base: 800, kind: entity.DiscountKind("MYSTERY"), value: 50, expected: 800},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ApplyDiscount(tc.base, tc.kind, tc.value))
		})
	}
}

func TestDerivePaymentStatus(t *testing.T) {
	tests := []struct {
		name     string
		advance  int64
		total    int64
		expected entity.PaymentStatus
	}{
		{name: "nothing paid", advance: 0, total: 700, expected: entity.PaymentStatusPending},
		{name: "partial", advance: 300, total: 700, expected: entity.PaymentStatusPartial},
		{name: "paid in full", advance: 700, total: 700, expected: entity.PaymentStatusPaid},
		{name: "free booking counts as pending", advance: 0, total: 0, expected: entity.PaymentStatusPending},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, DerivePaymentStatus(tc.advance, tc.total))
		})
	}
}

func TestBalanceAmount(t *testing.T) {
	assert.Equal(t, int64(400), BalanceAmount(700, 300))
	assert.Equal(t, int64(0), BalanceAmount(700, 700))
	assert.Equal(t, int64(0), BalanceAmount(700, 900))
	assert.Equal(t, int64(700), BalanceAmount(700, 0))
}
