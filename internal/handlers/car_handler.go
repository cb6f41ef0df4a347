package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sitzy/internal/i18n"
	"sitzy/internal/middleware"
	"sitzy/internal/services"
	"sitzy/internal/utils"
)

type CarHandler struct {
	carService services.CarService
	localizer  *i18n.Localizer
}

func NewCarHandler(carService services.CarService, localizer *i18n.Localizer) *CarHandler {
	return &CarHandler{
		carService: carService,
		localizer:  localizer,
	}
}

func (h *CarHandler) GetMyCar(c *gin.Context) {
	user, ok := currentUser(c, h.localizer)
	if !ok {
		return
	}

	car, err := h.carService.GetMyCar(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, h.localizer, err)
		return
	}

	utils.SuccessResponse(c, "Car retrieved", car)
}

func (h *CarHandler) CreateCar(c *gin.Context) {
	user, ok := currentUser(c, h.localizer)
	if !ok {
		return
	}

	var request services.CarRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ValidationErrorResponse(c, err.Error())
		return
	}

	car, err := h.carService.Create(c.Request.Context(), user.ID, &request)
	if err != nil {
		respondError(c, h.localizer, err)
		return
	}

	utils.CreatedResponse(c, "Car created", car)
}

func (h *CarHandler) UpdateCar(c *gin.Context) {
	user, ok := currentUser(c, h.localizer)
	if !ok {
		return
	}

	carID, err := uuid.Parse(c.Param("car_id"))
	if err != nil {
		utils.ValidationErrorResponse(c, h.localizer.Message("invalid_car_id", middleware.Lang(c)))
		return
	}

	var request services.CarRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ValidationErrorResponse(c, err.Error())
		return
	}

	car, err := h.carService.Update(c.Request.Context(), user.ID, carID, &request)
	if err != nil {
		respondError(c, h.localizer, err)
		return
	}

	utils.SuccessResponse(c, "Car updated", car)
}

func (h *CarHandler) DeleteCar(c *gin.Context) {
	user, ok := currentUser(c, h.localizer)
	if !ok {
		return
	}

	carID, err := uuid.Parse(c.Param("car_id"))
	if err != nil {
		utils.ValidationErrorResponse(c, h.localizer.Message("invalid_car_id", middleware.Lang(c)))
		return
	}

	if err := h.carService.Delete(c.Request.Context(), user.ID, carID); err != nil {
		respondError(c, h.localizer, err)
		return
	}

	utils.NoContentResponse(c)
}
