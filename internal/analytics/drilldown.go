package analytics

import (
	"strings"
	"time"

	"github.com/scxttalex/areabooker/internal/timeutil"
)

// PaidFilter narrows a drill-down listing by settlement status.
type PaidFilter string

const (
	PaidAll    PaidFilter = "all"
	PaidOnly   PaidFilter = "paid"
	UnpaidOnly PaidFilter = "unpaid"
)

// ParsePaidFilter maps a request string to a filter, defaulting to all.
func ParsePaidFilter(s string) PaidFilter {
	switch PaidFilter(s) {
	case PaidOnly, UnpaidOnly:
		return PaidFilter(s)
	default:
		return PaidAll
	}
}

func (f PaidFilter) matches(paid bool) bool {
	switch f {
	case PaidOnly:
		return paid
	case UnpaidOnly:
		return !paid
	default:
		return true
	}
}

// BookingDetail is one drill-down row with its references resolved to
// display names. Unresolvable addon ids fall back to the raw id.
type BookingDetail struct {
	ID         string   `json:"id"`
	Username   string   `json:"username"`
	Date       string   `json:"date"`
	StartTime  string   `json:"start_time"`
	EndTime    string   `json:"end_time"`
	Purpose    string   `json:"purpose"`
	AddonNames []string `json:"addon_names"`
	Notes      string   `json:"notes"`
	TotalPrice float64  `json:"total_price"`
	Paid       bool     `json:"paid"`
}

// DrilldownPage is one page of the current-period bookings for one area.
type DrilldownPage struct {
	AreaName   string          `json:"area_name"`
	Period     string          `json:"period"`
	PaidFilter PaidFilter      `json:"paid_filter"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalItems int             `json:"total_items"`
	TotalPages int             `json:"total_pages"`
	Bookings   []BookingDetail `json:"bookings"`
}

// Drilldown lists the current-period bookings for one area, optionally
// filtered by settlement status, paginated at pageSize. The page index is
// clamped into the valid range: a request past the end returns the last
// page's contents rather than an empty slice.
func Drilldown(snap Snapshot, g timeutil.Granularity, now time.Time, areaID string, filter PaidFilter, page, pageSize int) DrilldownPage {
	currentKey := timeutil.PeriodKey(now, g)
	areaNames := snap.areaNames()
	addonNames := snap.addonNames()
	users := snap.usersByID()

	if pageSize <= 0 {
		pageSize = 1
	}

	var matched []BookingDetail
	for _, b := range snap.Bookings {
		if b.AreaID != areaID || !filter.matches(b.Paid) {
			continue
		}
		if timeutil.PeriodKey(b.Date.Time, g) != currentKey {
			continue
		}

		names := make([]string, 0, len(b.AddonIDs))
		for _, id := range b.AddonIDs {
			if name, ok := addonNames[id]; ok && name != "" {
				names = append(names, name)
			} else {
				names = append(names, id)
			}
		}

		matched = append(matched, BookingDetail{
			ID:         b.ID,
			Username:   resolveUserName(users, b.UserID),
			Date:       b.Date.String(),
			StartTime:  b.StartTime,
			EndTime:    b.EndTime,
			Purpose:    strings.Join(b.Purpose, ", "),
			AddonNames: names,
			Notes:      b.Notes,
			TotalPrice: b.TotalPrice,
			Paid:       b.Paid,
		})
	}

	totalPages := (len(matched) + pageSize - 1) / pageSize
	page = ClampPage(page, len(matched), pageSize)

	start := page * pageSize
	end := start + pageSize
	if end > len(matched) {
		end = len(matched)
	}
	items := matched[start:end]
	if items == nil {
		items = []BookingDetail{}
	}

	return DrilldownPage{
		AreaName:   resolveAreaName(areaNames, areaID),
		Period:     currentKey,
		PaidFilter: filter,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: len(matched),
		TotalPages: totalPages,
		Bookings:   items,
	}
}

// ClampPage forces a page index into [0, ceil(total/pageSize)-1]. An empty
// listing clamps to page 0.
func ClampPage(page, total, pageSize int) int {
	if page < 0 {
		return 0
	}
	if pageSize <= 0 || total <= 0 {
		return 0
	}
	last := (total+pageSize-1)/pageSize - 1
	if page > last {
		return last
	}
	return page
}

// ViewState is the interactive state of the analytics view: the grouping
// granularity, the drilled-into area and the page index. It lives with the
// host (persisted between requests, never a package global); switching the
// granularity or the selected area resets pagination to the first page.
type ViewState struct {
	Granularity timeutil.Granularity `json:"granularity"`
	AreaID      string               `json:"area_id,omitempty"`
	Page        int                  `json:"page"`
}

// NewViewState returns the default state the dashboard opens with.
func NewViewState() ViewState {
	return ViewState{Granularity: timeutil.GranularityDaily}
}

// SetGranularity switches the grouping and resets pagination.
func (s *ViewState) SetGranularity(g timeutil.Granularity) {
	if s.Granularity == g {
		return
	}
	s.Granularity = g
	s.Page = 0
}

// SelectArea drills into an area and resets pagination. Selecting the
// already-selected area clears the selection, mirroring the toggle in the
// dashboard UI.
func (s *ViewState) SelectArea(areaID string) {
	if s.AreaID == areaID {
		s.AreaID = ""
	} else {
		s.AreaID = areaID
	}
	s.Page = 0
}

// SetPage moves to a requested page; clamping against the actual listing
// happens in Drilldown.
func (s *ViewState) SetPage(page int) {
	if page < 0 {
		page = 0
	}
	s.Page = page
}
