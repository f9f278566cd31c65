package transport

import (
	"github.com/gin-gonic/gin"

	"github.com/scxttalex/areabooker/internal/service"
)

type AddonHandler struct {
	addonService service.AddonService
}

func NewAddonHandler(addonService service.AddonService) *AddonHandler {
	return &AddonHandler{addonService: addonService}
}

func (h *AddonHandler) CreateAddon(c *gin.Context) {
	var req service.CreateAddonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	addon, err := h.addonService.CreateAddon(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondCreated(c, addon)
}

func (h *AddonHandler) GetAddon(c *gin.Context) {
	addon, err := h.addonService.GetAddon(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, addon)
}

func (h *AddonHandler) GetAllAddons(c *gin.Context) {
	addons, err := h.addonService.GetAllAddons(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, addons)
}

func (h *AddonHandler) UpdateAddon(c *gin.Context) {
	var req service.UpdateAddonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	addon, err := h.addonService.UpdateAddon(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, addon)
}

func (h *AddonHandler) DeleteAddon(c *gin.Context) {
	if err := h.addonService.DeleteAddon(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, nil)
}
