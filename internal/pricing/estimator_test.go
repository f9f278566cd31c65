package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scxttalex/areabooker/internal/entity"
)

func TestEstimate(t *testing.T) {
	area := entity.Area{ID: "a1", Name: "Main Pitch", BasePrice: 20}
	floodlights := entity.Addon{ID: "x1", Name: "Floodlights", Price: 5}

	tests := []struct {
		name      string
		area      entity.Area
		addons    []entity.Addon
		start     string
		end       string
		inhouse   bool
		wantTotal float64
	}{
		{
			name:      "area plus addon over two hours",
			area:      area,
			addons:    []entity.Addon{floodlights},
			start:     "10:00",
			end:       "12:00",
			wantTotal: 50.00,
		},
		{
			name:      "inhouse discount halves the subtotal",
			area:      area,
			addons:    []entity.Addon{floodlights},
			start:     "10:00",
			end:       "12:00",
			inhouse:   true,
			wantTotal: 25.00,
		},
		{
			name:      "no addons",
			area:      area,
			start:     "09:00",
			end:       "10:30",
			wantTotal: 30.00,
		},
		{
			name:      "zero duration yields zero total",
			area:      area,
			addons:    []entity.Addon{floodlights},
			start:     "12:00",
			end:       "12:00",
			wantTotal: 0,
		},
		{
			name:      "end before start yields zero total",
			area:      area,
			start:     "14:00",
			end:       "10:00",
			wantTotal: 0,
		},
		{
			name:      "malformed time yields zero total",
			area:      area,
			start:     "noon",
			end:       "14:00",
			wantTotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Estimate(tt.area, tt.addons, tt.start, tt.end, tt.inhouse)
			assert.Equal(t, tt.wantTotal, q.Total)
			assert.Equal(t, tt.inhouse, q.InhouseDiscount)
			assert.Equal(t, tt.wantTotal, Total(tt.area, tt.addons, tt.start, tt.end, tt.inhouse))
		})
	}
}

// TestEstimateBreakdown checks the itemized lines, not just the total.
func TestEstimateBreakdown(t *testing.T) {
	area := entity.Area{ID: "a1", Name: "Clubhouse", BasePrice: 40}
	addons := []entity.Addon{
		{ID: "x1", Name: "Bar Staff", Price: 15},
		{ID: "x2", Name: "PA System", Price: 10},
	}

	q := Estimate(area, addons, "18:00", "22:30", false)

	require.Len(t, q.Addons, 2)
	assert.InDelta(t, 4.5, q.DurationHours, 1e-9)
	assert.Equal(t, 180.00, q.Area.Cost)
	assert.Equal(t, 67.50, q.Addons[0].Cost)
	assert.Equal(t, 45.00, q.Addons[1].Cost)
	assert.Equal(t, 292.50, q.Subtotal)
	assert.Equal(t, 292.50, q.Total)
}

// Rounding applies to the final figures only, so fractional rates do not
// compound rounding error across lines.
func TestEstimateRoundsOnceAtTheEnd(t *testing.T) {
	area := entity.Area{ID: "a1", Name: "Side Room", BasePrice: 10.11}
	addons := []entity.Addon{{ID: "x1", Name: "Projector", Price: 3.33}}

	q := Estimate(area, addons, "09:00", "09:45", false)

	// (10.11 + 3.33) * 0.75 = 10.08 exactly when rounded once.
	assert.Equal(t, 10.08, q.Total)
}
