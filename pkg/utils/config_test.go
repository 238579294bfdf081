package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekendSet(t *testing.T) {
	t.Run("default saturday sunday", func(t *testing.T) {
		set := BookingConfig{WeekendDays: "Saturday,Sunday"}.WeekendSet()

		assert.True(t, set[time.Saturday])
		assert.True(t, set[time.Sunday])
		assert.False(t, set[time.Friday])
	})

	t.Run("custom days with spacing and case", func(t *testing.T) {
		set := BookingConfig{WeekendDays: "friday, SATURDAY"}.WeekendSet()

		assert.True(t, set[time.Friday])
		assert.True(t, set[time.Saturday])
		assert.False(t, set[time.Sunday])
	})

	t.Run("garbage falls back to saturday sunday", func(t *testing.T) {
		set := BookingConfig{WeekendDays: "holiday,someday"}.WeekendSet()

		assert.True(t, set[time.Saturday])
		assert.True(t, set[time.Sunday])
		assert.Len(t, set, 2)
	})
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2026-09-07")

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC), parsed)
	assert.Equal(t, "2026-09-07", FormatDate(parsed))

	_, err = ParseDate("07-09-2026")
	assert.Error(t, err)
}
