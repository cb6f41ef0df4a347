package handlers

import (
	"github.com/gin-gonic/gin"

	"sitzy/internal/i18n"
	"sitzy/internal/middleware"
	"sitzy/internal/utils"
)

// RideHandler reserves the ride-scheduling surface. The data model exists;
// the workflow does not yet, so every operation answers 501.
type RideHandler struct {
	localizer *i18n.Localizer
}

func NewRideHandler(localizer *i18n.Localizer) *RideHandler {
	return &RideHandler{localizer: localizer}
}

func (h *RideHandler) NotImplemented(c *gin.Context) {
	utils.NotImplementedResponse(c, h.localizer.Message("not_implemented", middleware.Lang(c)))
}
