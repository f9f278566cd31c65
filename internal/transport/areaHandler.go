package transport

import (
	"github.com/gin-gonic/gin"

	"github.com/scxttalex/areabooker/internal/service"
)

type AreaHandler struct {
	areaService    service.AreaService
	bookingService service.BookingService
}

func NewAreaHandler(areaService service.AreaService, bookingService service.BookingService) *AreaHandler {
	return &AreaHandler{areaService: areaService, bookingService: bookingService}
}

func (h *AreaHandler) CreateArea(c *gin.Context) {
	var req service.CreateAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	area, err := h.areaService.CreateArea(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondCreated(c, area)
}

func (h *AreaHandler) GetArea(c *gin.Context) {
	area, err := h.areaService.GetArea(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, area)
}

func (h *AreaHandler) GetAllAreas(c *gin.Context) {
	areas, err := h.areaService.GetAllAreas(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, areas)
}

func (h *AreaHandler) UpdateArea(c *gin.Context) {
	var req service.UpdateAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	area, err := h.areaService.UpdateArea(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, area)
}

func (h *AreaHandler) DeleteArea(c *gin.Context) {
	if err := h.areaService.DeleteArea(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, nil)
}

// GetAreaSlots lists the pickable start hours and minute marks derived
// from the area's opening time.
func (h *AreaHandler) GetAreaSlots(c *gin.Context) {
	slots, err := h.bookingService.GetAreaSlots(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, slots)
}

// CheckAvailability runs the advisory window check for a start/end pair.
func (h *AreaHandler) CheckAvailability(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")
	if start == "" || end == "" {
		respondBadRequest(c, "start and end query parameters are required")
		return
	}

	check, err := h.bookingService.CheckAvailability(c.Request.Context(), c.Param("id"), start, end)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, check)
}
