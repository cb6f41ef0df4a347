package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sitzy/internal/i18n"
	"sitzy/internal/middleware"
	"sitzy/internal/services"
	"sitzy/internal/utils"
)

type DriverHandler struct {
	driverService services.DriverService
	localizer     *i18n.Localizer
}

func NewDriverHandler(driverService services.DriverService, localizer *i18n.Localizer) *DriverHandler {
	return &DriverHandler{
		driverService: driverService,
		localizer:     localizer,
	}
}

type AssignDriverRequest struct {
	DriverID uuid.UUID `json:"driver_id" binding:"required"`
}

// AssignDriver makes the given user the car's active driver, revoking any
// previous one.
func (h *DriverHandler) AssignDriver(c *gin.Context) {
	user, ok := currentUser(c, h.localizer)
	if !ok {
		return
	}

	carID, err := uuid.Parse(c.Param("car_id"))
	if err != nil {
		utils.ValidationErrorResponse(c, h.localizer.Message("invalid_car_id", middleware.Lang(c)))
		return
	}

	var request AssignDriverRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ValidationErrorResponse(c, err.Error())
		return
	}

	assigned, err := h.driverService.Assign(c.Request.Context(), user.ID, carID, request.DriverID)
	if err != nil {
		respondError(c, h.localizer, err)
		return
	}

	utils.SuccessResponse(c, "Driver assigned", assigned)
}

func (h *DriverHandler) RevokeDriver(c *gin.Context) {
	user, ok := currentUser(c, h.localizer)
	if !ok {
		return
	}

	carID, err := uuid.Parse(c.Param("car_id"))
	if err != nil {
		utils.ValidationErrorResponse(c, h.localizer.Message("invalid_car_id", middleware.Lang(c)))
		return
	}

	if err := h.driverService.Revoke(c.Request.Context(), user.ID, carID); err != nil {
		respondError(c, h.localizer, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *DriverHandler) GetActiveDriver(c *gin.Context) {
	user, ok := currentUser(c, h.localizer)
	if !ok {
		return
	}

	carID, err := uuid.Parse(c.Param("car_id"))
	if err != nil {
		utils.ValidationErrorResponse(c, h.localizer.Message("invalid_car_id", middleware.Lang(c)))
		return
	}

	assigned, err := h.driverService.GetActive(c.Request.Context(), user.ID, carID)
	if err != nil {
		respondError(c, h.localizer, err)
		return
	}

	utils.SuccessResponse(c, "Active driver retrieved", assigned)
}
