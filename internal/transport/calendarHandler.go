package transport

import (
	"github.com/gin-gonic/gin"

	"github.com/scxttalex/areabooker/internal/service"
)

type CalendarHandler struct {
	calendarService service.CalendarService
}

func NewCalendarHandler(calendarService service.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendarService: calendarService}
}

// GetCalendar serves the laid-out calendar cells for the requested view
// mode and period offset.
func (h *CalendarHandler) GetCalendar(c *gin.Context) {
	var req service.CalendarRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBadRequest(c, "invalid query parameters: "+err.Error())
		return
	}

	cells, err := h.calendarService.GetCalendar(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, cells)
}
