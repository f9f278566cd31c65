package transport

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/scxttalex/areabooker/internal/service"
	"github.com/scxttalex/areabooker/internal/timeutil"
)

type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GetDashboard serves the aggregated dashboard for one granularity.
// Unknown granularity strings fall back to daily.
func (h *AnalyticsHandler) GetDashboard(c *gin.Context) {
	g := timeutil.ParseGranularity(c.Query("granularity"))

	dashboard, err := h.analyticsService.GetDashboard(c.Request.Context(), g)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, dashboard)
}

// GetDrilldown pages through one area's bookings for the current period.
// The client id keys the persisted view state; absent parameters fall back
// to that state.
func (h *AnalyticsHandler) GetDrilldown(c *gin.Context) {
	req := service.DrilldownRequest{
		ClientID:    c.GetHeader("X-Client-ID"),
		Granularity: c.Query("granularity"),
		AreaID:      c.Param("id"),
		PaidFilter:  c.Query("paid"),
	}

	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			respondBadRequest(c, "invalid page parameter")
			return
		}
		req.Page = &page
	}

	page, err := h.analyticsService.GetDrilldown(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, page)
}
