package analytics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scxttalex/areabooker/internal/entity"
	"github.com/scxttalex/areabooker/internal/timeutil"
)

func drilldownSnapshot(n int) Snapshot {
	snap := Snapshot{
		Areas:  []entity.Area{{ID: "a1", Name: "Main Pitch"}},
		Addons: []entity.Addon{{ID: "x1", Name: "Floodlights"}},
		Users:  []entity.User{{ID: "u1", Username: "alice"}},
	}
	for i := 0; i < n; i++ {
		snap.Bookings = append(snap.Bookings, entity.Booking{
			ID:       fmt.Sprintf("b%d", i),
			AreaID:   "a1",
			UserID:   "u1",
			Date:     day("2025-04-10"),
			Paid:     i%2 == 0,
			AddonIDs: []string{"x1", "x-deleted"},
		})
	}
	return snap
}

func TestDrilldown(t *testing.T) {
	page := Drilldown(drilldownSnapshot(5), timeutil.GranularityDaily, now, "a1", PaidAll, 0, 2)

	assert.Equal(t, "Main Pitch", page.AreaName)
	assert.Equal(t, "2025-04-10", page.Period)
	assert.Equal(t, 5, page.TotalItems)
	assert.Equal(t, 3, page.TotalPages)
	require.Len(t, page.Bookings, 2)
	assert.Equal(t, "b0", page.Bookings[0].ID)
	assert.Equal(t, "alice", page.Bookings[0].Username)
	// Resolvable addon ids become names; dangling ids stay raw.
	assert.Equal(t, []string{"Floodlights", "x-deleted"}, page.Bookings[0].AddonNames)
}

func TestDrilldownPaidFilter(t *testing.T) {
	snap := drilldownSnapshot(5)

	paid := Drilldown(snap, timeutil.GranularityDaily, now, "a1", PaidOnly, 0, 10)
	assert.Equal(t, 3, paid.TotalItems)
	for _, b := range paid.Bookings {
		assert.True(t, b.Paid)
	}

	unpaid := Drilldown(snap, timeutil.GranularityDaily, now, "a1", UnpaidOnly, 0, 10)
	assert.Equal(t, 2, unpaid.TotalItems)
	for _, b := range unpaid.Bookings {
		assert.False(t, b.Paid)
	}
}

// A page request beyond the end returns the last page's contents, never an
// empty slice masquerading as "no results".
func TestDrilldownPageClamp(t *testing.T) {
	snap := drilldownSnapshot(5)

	last := Drilldown(snap, timeutil.GranularityDaily, now, "a1", PaidAll, 99, 2)
	assert.Equal(t, 2, last.Page)
	require.Len(t, last.Bookings, 1)
	assert.Equal(t, "b4", last.Bookings[0].ID)

	first := Drilldown(snap, timeutil.GranularityDaily, now, "a1", PaidAll, -3, 2)
	assert.Equal(t, 0, first.Page)
	assert.Len(t, first.Bookings, 2)
}

func TestDrilldownOutsidePeriod(t *testing.T) {
	page := Drilldown(drilldownSnapshot(3), timeutil.GranularityDaily, now.AddDate(0, 0, 1), "a1", PaidAll, 0, 2)

	assert.Zero(t, page.TotalItems)
	assert.Zero(t, page.TotalPages)
	assert.Empty(t, page.Bookings)
}

func TestDrilldownUnknownArea(t *testing.T) {
	page := Drilldown(drilldownSnapshot(3), timeutil.GranularityDaily, now, "nope", PaidAll, 0, 2)

	assert.Equal(t, "Unknown Area", page.AreaName)
	assert.Zero(t, page.TotalItems)
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		total    int
		pageSize int
		want     int
	}{
		{name: "in range", page: 1, total: 10, pageSize: 3, want: 1},
		{name: "past the end", page: 9, total: 10, pageSize: 3, want: 3},
		{name: "exactly last", page: 3, total: 10, pageSize: 3, want: 3},
		{name: "negative", page: -1, total: 10, pageSize: 3, want: 0},
		{name: "empty list", page: 4, total: 0, pageSize: 3, want: 0},
		{name: "zero page size", page: 4, total: 10, pageSize: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampPage(tt.page, tt.total, tt.pageSize))
		})
	}
}

func TestViewStateTransitions(t *testing.T) {
	state := NewViewState()
	assert.Equal(t, timeutil.GranularityDaily, state.Granularity)

	state.SetPage(3)
	assert.Equal(t, 3, state.Page)

	// Changing granularity resets pagination.
	state.SetGranularity(timeutil.GranularityWeekly)
	assert.Zero(t, state.Page)

	// Re-setting the same granularity keeps the page.
	state.SetPage(2)
	state.SetGranularity(timeutil.GranularityWeekly)
	assert.Equal(t, 2, state.Page)

	// Selecting an area resets pagination; re-selecting it toggles the
	// selection off.
	state.SelectArea("a1")
	assert.Equal(t, "a1", state.AreaID)
	assert.Zero(t, state.Page)

	state.SetPage(1)
	state.SelectArea("a1")
	assert.Empty(t, state.AreaID)
	assert.Zero(t, state.Page)

	state.SetPage(-5)
	assert.Zero(t, state.Page)
}

func TestParsePaidFilter(t *testing.T) {
	assert.Equal(t, PaidOnly, ParsePaidFilter("paid"))
	assert.Equal(t, UnpaidOnly, ParsePaidFilter("unpaid"))
	assert.Equal(t, PaidAll, ParsePaidFilter("everything"))
}
