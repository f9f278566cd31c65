package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scxttalex/areabooker/internal/entity"
	"github.com/scxttalex/areabooker/internal/timeutil"
)

var now = time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC)

func day(date string) entity.DateOnly {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return entity.NewDateOnly(t)
}

func testSnapshot() Snapshot {
	return Snapshot{
		Areas: []entity.Area{
			{ID: "a1", Name: "Main Pitch"},
			{ID: "a2", Name: "Clubhouse"},
		},
		Addons: []entity.Addon{
			{ID: "x1", Name: "Floodlights"},
		},
		Users: []entity.User{
			{ID: "u1", Username: "alice"},
			{ID: "u2", Username: "", IsGuest: true},
		},
		Bookings: []entity.Booking{
			{ID: "b1", AreaID: "a1", UserID: "u1", Date: day("2025-04-10"), StartTime: "10:00", EndTime: "12:00", TotalPrice: 40, Paid: true},
			{ID: "b2", AreaID: "a1", UserID: "u2", Date: day("2025-04-10"), StartTime: "14:00", EndTime: "15:00", TotalPrice: 20},
			{ID: "b3", AreaID: "a2", UserID: "u1", Date: day("2025-04-09"), StartTime: "09:00", EndTime: "10:00", TotalPrice: 15, Paid: true},
			{ID: "b4", AreaID: "gone", UserID: "missing", Date: day("2025-03-01"), StartTime: "09:00", EndTime: "10:00", TotalPrice: 10},
		},
	}
}

// Weekly grouping: two bookings on the same day
// form a single weekly point.
func TestBuildDashboardWeeklyScenario(t *testing.T) {
	snap := Snapshot{
		Areas: []entity.Area{{ID: "a1", Name: "Main Pitch"}},
		Bookings: []entity.Booking{
			{ID: "b1", AreaID: "a1", Date: day("2025-04-10"), StartTime: "10:00", EndTime: "12:00", Paid: true},
			{ID: "b2", AreaID: "a1", Date: day("2025-04-10"), StartTime: "14:00", EndTime: "15:00"},
		},
	}

	d := BuildDashboard(snap, timeutil.GranularityWeekly, now)

	require.Len(t, d.BookingsOverTime, 1)
	assert.Equal(t, "2025-04-07", d.BookingsOverTime[0].Period)
	assert.Equal(t, 2, d.BookingsOverTime[0].Count)

	assert.Equal(t, PaidSplit{Paid: 1, Unpaid: 1}, d.PeriodPaidSplit)
	assert.Equal(t, PaidSplit{Paid: 1, Unpaid: 1}, d.PaidSplit)
}

func TestBuildDashboardSeriesOrderAndRevenue(t *testing.T) {
	d := BuildDashboard(testSnapshot(), timeutil.GranularityDaily, now)

	// Buckets appear in first-seen order, not sorted.
	require.Len(t, d.BookingsOverTime, 3)
	assert.Equal(t, "2025-04-10", d.BookingsOverTime[0].Period)
	assert.Equal(t, 2, d.BookingsOverTime[0].Count)
	assert.Equal(t, "2025-04-09", d.BookingsOverTime[1].Period)
	assert.Equal(t, "2025-03-01", d.BookingsOverTime[2].Period)

	require.Len(t, d.Revenue, 3)
	assert.Equal(t, 60.0, d.Revenue[0].Revenue)
	assert.Equal(t, 15.0, d.Revenue[1].Revenue)
	assert.Equal(t, 10.0, d.Revenue[2].Revenue)
}

func TestBuildDashboardAreaRanking(t *testing.T) {
	d := BuildDashboard(testSnapshot(), timeutil.GranularityDaily, now)

	// Current day has two bookings, both on the Main Pitch.
	require.Len(t, d.AreaRanking, 1)
	assert.Equal(t, "Main Pitch", d.AreaRanking[0].AreaName)
	assert.Equal(t, 2, d.AreaRanking[0].Count)
	assert.InDelta(t, 1.0, d.AreaRanking[0].Percent, 1e-9)
}

// Percentages across a non-empty period sum to one; an empty period has no
// entries and therefore no ratios to mis-handle.
func TestAreaRankingPercentages(t *testing.T) {
	d := BuildDashboard(testSnapshot(), timeutil.GranularityWeekly, now)

	require.Len(t, d.AreaRanking, 2)
	sum := 0.0
	for _, entry := range d.AreaRanking {
		sum += entry.Percent
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
	// Ranked by count descending.
	assert.GreaterOrEqual(t, d.AreaRanking[0].Count, d.AreaRanking[1].Count)

	empty := BuildDashboard(testSnapshot(), timeutil.GranularityDaily, now.AddDate(1, 0, 0))
	assert.Empty(t, empty.AreaRanking)
	assert.Equal(t, PaidSplit{}, empty.PeriodPaidSplit)
}

func TestBuildDashboardUserSplit(t *testing.T) {
	d := BuildDashboard(testSnapshot(), timeutil.GranularityDaily, now)

	// b1+b3 registered, b2 guest, b4's user record is missing and counts
	// as registered.
	assert.Equal(t, UserSplit{Registered: 3, Guest: 1}, d.UserSplit)
}

func TestBuildDashboardRecentActivity(t *testing.T) {
	d := BuildDashboard(testSnapshot(), timeutil.GranularityDaily, now)

	require.Len(t, d.RecentActivity, 4)
	assert.Equal(t, "2025-04-10", d.RecentActivity[0].Date)
	assert.Equal(t, "2025-03-01", d.RecentActivity[3].Date)

	// Name fallbacks: guest without a username, then fully unknown.
	assert.Equal(t, "alice", d.RecentActivity[0].Username)
	assert.Equal(t, "Guest", d.RecentActivity[1].Username)
	assert.Equal(t, "Unknown User", d.RecentActivity[3].Username)
	assert.Equal(t, "Unknown Area", d.RecentActivity[3].AreaName)
}

func TestRecentActivityLimit(t *testing.T) {
	snap := Snapshot{}
	for i := 0; i < 25; i++ {
		snap.Bookings = append(snap.Bookings, entity.Booking{
			ID:   string(rune('a' + i)),
			Date: day("2025-04-01"),
		})
	}

	d := BuildDashboard(snap, timeutil.GranularityDaily, now)
	assert.Len(t, d.RecentActivity, RecentActivityLimit)
}

func TestBuildDashboardRevenueRounding(t *testing.T) {
	snap := Snapshot{
		Bookings: []entity.Booking{
			{ID: "b1", Date: day("2025-04-10"), TotalPrice: 10.111},
			{ID: "b2", Date: day("2025-04-10"), TotalPrice: 20.222},
		},
	}

	d := BuildDashboard(snap, timeutil.GranularityDaily, now)
	require.Len(t, d.Revenue, 1)
	assert.Equal(t, 30.33, d.Revenue[0].Revenue)
}

func TestBuildDashboardEmptySnapshot(t *testing.T) {
	d := BuildDashboard(Snapshot{}, timeutil.GranularityMonthly, now)

	assert.Empty(t, d.BookingsOverTime)
	assert.Empty(t, d.Revenue)
	assert.Empty(t, d.AreaRanking)
	assert.Empty(t, d.RecentActivity)
	assert.Equal(t, PaidSplit{}, d.PaidSplit)
	assert.Equal(t, "2025-04", d.Period)
}
