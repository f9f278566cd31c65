package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scxttalex/areabooker/internal/entity"
)

func TestSlotOptions(t *testing.T) {
	tests := []struct {
		name        string
		openTime    string
		wantFirst   string
		wantLast    string
		wantHours   int
		wantAtOpen  []string
		wantMinutes []string
	}{
		{
			name:        "opens on the hour",
			openTime:    "08:00",
			wantFirst:   "08",
			wantLast:    "23",
			wantHours:   16,
			wantAtOpen:  []string{"00", "15", "30", "45"},
			wantMinutes: []string{"00", "15", "30", "45"},
		},
		{
			name:        "opens mid hour restricts opening-hour minutes",
			openTime:    "09:30",
			wantFirst:   "09",
			wantLast:    "23",
			wantHours:   15,
			wantAtOpen:  []string{"30", "45"},
			wantMinutes: []string{"00", "15", "30", "45"},
		},
		{
			name:        "malformed opening time degrades to a full day",
			openTime:    "whenever",
			wantFirst:   "00",
			wantLast:    "23",
			wantHours:   24,
			wantAtOpen:  []string{"00", "15", "30", "45"},
			wantMinutes: []string{"00", "15", "30", "45"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := SlotOptions(tt.openTime)
			require.Len(t, slots.Hours, tt.wantHours)
			assert.Equal(t, tt.wantFirst, slots.Hours[0])
			assert.Equal(t, tt.wantLast, slots.Hours[len(slots.Hours)-1])
			assert.Equal(t, tt.wantAtOpen, slots.MinutesAtOpen)
			assert.Equal(t, tt.wantMinutes, slots.Minutes)
		})
	}
}

// The closing time never trims the hour list; only hours before opening
// are excluded.
func TestSlotOptionsIgnoresCloseTime(t *testing.T) {
	slots := SlotOptions("10:00")
	assert.Equal(t, "23", slots.Hours[len(slots.Hours)-1])
}

func TestCheckWindow(t *testing.T) {
	area := entity.Area{Name: "Main Pitch", OpenTime: "08:00", CloseTime: "22:00"}

	tests := []struct {
		name         string
		start        string
		end          string
		wantValid    bool
		wantDuration float64
	}{
		{
			name:         "window inside operating hours",
			start:        "10:00",
			end:          "12:00",
			wantValid:    true,
			wantDuration: 2,
		},
		{
			name:      "start before opening is rejected",
			start:     "07:00",
			end:       "09:00",
			wantValid: false,
		},
		{
			name:         "end before start resolves to zero duration",
			start:        "14:00",
			end:          "12:00",
			wantValid:    true,
			wantDuration: 0,
		},
		{
			name:      "malformed start is rejected",
			start:     "later",
			end:       "12:00",
			wantValid: false,
		},
		{
			name:         "window past closing time is still allowed",
			start:        "21:00",
			end:          "23:30",
			wantValid:    true,
			wantDuration: 2.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check := CheckWindow(area, tt.start, tt.end)
			assert.Equal(t, tt.wantValid, check.Valid)
			assert.InDelta(t, tt.wantDuration, check.DurationHours, 1e-9)
			if !tt.wantValid {
				assert.NotEmpty(t, check.Reason)
			}
		})
	}
}

func TestCheckWindowMalformedOpenTime(t *testing.T) {
	area := entity.Area{Name: "Annex"}

	check := CheckWindow(area, "06:00", "08:00")
	assert.True(t, check.Valid)
	assert.InDelta(t, 2, check.DurationHours, 1e-9)
}
