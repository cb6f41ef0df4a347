package handlers

import (
	"github.com/gin-gonic/gin"

	"sitzy/internal/i18n"
	"sitzy/internal/services"
	"sitzy/internal/utils"
)

type DashboardHandler struct {
	dashboardService services.DashboardService
	localizer        *i18n.Localizer
}

func NewDashboardHandler(dashboardService services.DashboardService, localizer *i18n.Localizer) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		localizer:        localizer,
	}
}

func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	user, ok := currentUser(c, h.localizer)
	if !ok {
		return
	}

	dashboard, err := h.dashboardService.Get(c.Request.Context(), user)
	if err != nil {
		respondError(c, h.localizer, err)
		return
	}

	utils.SuccessResponse(c, "Dashboard retrieved", dashboard)
}
