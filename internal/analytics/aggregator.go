// Period-bucketed booking analytics: time series, revenue, popularity
// rankings and activity reporting over a full snapshot of records.
//
// Every function here is a pure reduction over the snapshot it is handed.
// The current wall-clock date always arrives as an explicit argument so
// "current period" figures are reproducible in tests.
package analytics

import (
	"sort"
	"time"

	"github.com/scxttalex/areabooker/internal/entity"
	"github.com/scxttalex/areabooker/internal/timeutil"
)

const (
	unknownAreaName = "Unknown Area"
	unknownUserName = "Unknown User"
	guestUserName   = "Guest"

	// RecentActivityLimit caps the activity log at the 10 latest bookings.
	RecentActivityLimit = 10
)

// Snapshot is the read-only view of the record store a single aggregation
// pass works from. References between records may dangle: lookups fall
// back to documented labels instead of failing.
type Snapshot struct {
	Bookings []entity.Booking `json:"bookings"`
	Areas    []entity.Area    `json:"areas"`
	Addons   []entity.Addon   `json:"addons"`
	Users    []entity.User    `json:"users"`
}

func (s Snapshot) areaNames() map[string]string {
	m := make(map[string]string, len(s.Areas))
	for _, a := range s.Areas {
		m[a.ID] = a.Name
	}
	return m
}

func (s Snapshot) usersByID() map[string]entity.User {
	m := make(map[string]entity.User, len(s.Users))
	for _, u := range s.Users {
		m[u.ID] = u
	}
	return m
}

func (s Snapshot) addonNames() map[string]string {
	m := make(map[string]string, len(s.Addons))
	for _, a := range s.Addons {
		m[a.ID] = a.Name
	}
	return m
}

// TimePoint is one bucket of the bookings-over-time series.
type TimePoint struct {
	Period string `json:"period"`
	Count  int    `json:"count"`
}

// RevenuePoint is one bucket of the revenue series, rounded per bucket.
type RevenuePoint struct {
	Period  string  `json:"period"`
	Revenue float64 `json:"revenue"`
}

// AreaCount ranks one area within the current period. Percent is the
// area's share of the period's bookings, zero when the period is empty.
type AreaCount struct {
	AreaName string  `json:"area_name"`
	Count    int     `json:"count"`
	Percent  float64 `json:"percent"`
}

// UserSplit counts bookings by requester classification.
type UserSplit struct {
	Registered int `json:"registered"`
	Guest      int `json:"guest"`
}

// PaidSplit counts settled versus unsettled bookings.
type PaidSplit struct {
	Paid   int `json:"paid"`
	Unpaid int `json:"unpaid"`
}

// ActivityEntry is one line of the recent-activity log, fully resolved to
// display names.
type ActivityEntry struct {
	Username string `json:"username"`
	AreaName string `json:"area_name"`
	Date     string `json:"date"`
}

// Dashboard is everything the analytics view renders for one granularity.
// PaidSplit covers all bookings (header statistic); PeriodPaidSplit is
// restricted to the current period (ratio display). Both are exposed so
// the host never has to re-derive one from the other.
type Dashboard struct {
	Granularity      timeutil.Granularity `json:"granularity"`
	Period           string               `json:"period"`
	BookingsOverTime []TimePoint          `json:"bookings_over_time"`
	Revenue          []RevenuePoint       `json:"revenue"`
	AreaRanking      []AreaCount          `json:"area_ranking"`
	UserSplit        UserSplit            `json:"user_split"`
	PaidSplit        PaidSplit            `json:"paid_split"`
	PeriodPaidSplit  PaidSplit            `json:"period_paid_split"`
	RecentActivity   []ActivityEntry      `json:"recent_activity"`
}

// BuildDashboard reduces the snapshot into the dashboard for granularity g,
// with "now" deciding which bucket counts as the current period.
func BuildDashboard(snap Snapshot, g timeutil.Granularity, now time.Time) Dashboard {
	currentKey := timeutil.PeriodKey(now, g)
	areaNames := snap.areaNames()
	users := snap.usersByID()

	d := Dashboard{
		Granularity:      g,
		Period:           currentKey,
		BookingsOverTime: []TimePoint{},
		Revenue:          []RevenuePoint{},
		AreaRanking:      []AreaCount{},
		RecentActivity:   []ActivityEntry{},
	}

	// Series buckets keep first-seen insertion order, matching the order
	// bookings arrive from the store.
	countIdx := make(map[string]int)
	revenueIdx := make(map[string]int)
	areaCounts := make(map[string]int)
	periodTotal := 0

	for _, b := range snap.Bookings {
		key := timeutil.PeriodKey(b.Date.Time, g)

		if i, ok := countIdx[key]; ok {
			d.BookingsOverTime[i].Count++
		} else {
			countIdx[key] = len(d.BookingsOverTime)
			d.BookingsOverTime = append(d.BookingsOverTime, TimePoint{Period: key, Count: 1})
		}

		if i, ok := revenueIdx[key]; ok {
			d.Revenue[i].Revenue += b.TotalPrice
		} else {
			revenueIdx[key] = len(d.Revenue)
			d.Revenue = append(d.Revenue, RevenuePoint{Period: key, Revenue: b.TotalPrice})
		}

		if b.Paid {
			d.PaidSplit.Paid++
		} else {
			d.PaidSplit.Unpaid++
		}

		// A booking whose user record is gone counts as registered; only
		// an explicit isGuest flag makes it a guest booking.
		if users[b.UserID].IsGuest {
			d.UserSplit.Guest++
		} else {
			d.UserSplit.Registered++
		}

		if key != currentKey {
			continue
		}
		periodTotal++
		areaCounts[resolveAreaName(areaNames, b.AreaID)]++
		if b.Paid {
			d.PeriodPaidSplit.Paid++
		} else {
			d.PeriodPaidSplit.Unpaid++
		}
	}

	for i := range d.Revenue {
		d.Revenue[i].Revenue = timeutil.Round2(d.Revenue[i].Revenue)
	}

	for name, count := range areaCounts {
		entry := AreaCount{AreaName: name, Count: count}
		if periodTotal > 0 {
			entry.Percent = float64(count) / float64(periodTotal)
		}
		d.AreaRanking = append(d.AreaRanking, entry)
	}
	sort.Slice(d.AreaRanking, func(i, j int) bool {
		if d.AreaRanking[i].Count != d.AreaRanking[j].Count {
			return d.AreaRanking[i].Count > d.AreaRanking[j].Count
		}
		return d.AreaRanking[i].AreaName < d.AreaRanking[j].AreaName
	})

	d.RecentActivity = recentActivity(snap.Bookings, areaNames, users)
	return d
}

// recentActivity returns the latest bookings by date descending, resolved
// to display names.
func recentActivity(bookings []entity.Booking, areaNames map[string]string, users map[string]entity.User) []ActivityEntry {
	sorted := make([]entity.Booking, len(bookings))
	copy(sorted, bookings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Time.After(sorted[j].Date.Time)
	})

	if len(sorted) > RecentActivityLimit {
		sorted = sorted[:RecentActivityLimit]
	}

	log := make([]ActivityEntry, 0, len(sorted))
	for _, b := range sorted {
		log = append(log, ActivityEntry{
			Username: resolveUserName(users, b.UserID),
			AreaName: resolveAreaName(areaNames, b.AreaID),
			Date:     b.Date.String(),
		})
	}
	return log
}

func resolveAreaName(areaNames map[string]string, areaID string) string {
	if name, ok := areaNames[areaID]; ok && name != "" {
		return name
	}
	return unknownAreaName
}

// resolveUserName follows the display fallback chain: username, then
// "Guest" for guest records without one, then "Unknown User".
func resolveUserName(users map[string]entity.User, userID string) string {
	u, ok := users[userID]
	if ok && u.Username != "" {
		return u.Username
	}
	if ok && u.IsGuest {
		return guestUserName
	}
	return unknownUserName
}
