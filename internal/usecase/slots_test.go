package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlots(t *testing.T) {
	tests := []struct {
		name        string
		start       string
		end         string
		granularity int
		expected    []string
		wantErr     bool
	}{
		{
			name:        "one hour at 15 minutes",
			start:       "10:00",
			end:         "11:00",
			granularity: 15,
			expected:    []string{"10:00", "10:15", "10:30", "10:45"},
		},
		{
			name:        "single slot",
			start:       "10:00",
			end:         "10:15",
			granularity: 15,
			expected:    []string{"10:00"},
		},
		{
			name:        "30 minute granularity",
			start:       "09:00",
			end:         "10:30",
			granularity: 30,
			expected:    []string{"09:00", "09:30", "10:00"},
		},
		{
			name:        "hourly granularity across midday",
			start:       "11:00",
			end:         "14:00",
			granularity: 60,
			expected:    []string{"11:00", "12:00", "13:00"},
		},
		{
			name:        "end equals start",
			start:       "10:00",
			end:         "10:00",
			granularity: 15,
			wantErr:     true,
		},
		{
			name:        "end before start",
			start:       "11:00",
			end:         "10:00",
			granularity: 15,
			wantErr:     true,
		},
		{
			name:        "start not aligned",
			start:       "10:05",
			end:         "11:00",
			granularity: 15,
			wantErr:     true,
		},
		{
			name:        "end not aligned",
			start:       "10:00",
			end:         "10:50",
			granularity: 15,
			wantErr:     true,
		},
		{
			name:        "missing colon",
			start:       "1000",
			end:         "11:00",
			granularity: 15,
			wantErr:     true,
		},
		{
			name:        "hour out of range",
			start:       "25:00",
			end:         "26:00",
			granularity: 15,
			wantErr:     true,
		},
		{
			name:        "minute out of range",
			start:       "10:61",
			end:         "11:00",
			granularity: 15,
			wantErr:     true,
		},
		{
			name:        "zero granularity",
			start:       "10:00",
			end:         "11:00",
			granularity: 0,
			wantErr:     true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			slots, err := GenerateSlots(tc.start, tc.end, tc.granularity)

			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidRange))
				assert.Nil(t, slots)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, slots)
		})
	}
}

func TestGenerateSlotsLeadingZeros(t *testing.T) {
	slots, err := GenerateSlots("08:00", "09:00", 30)

	require.NoError(t, err)
	assert.Equal(t, []string{"08:00", "08:30"}, slots)
}
