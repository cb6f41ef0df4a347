package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sitzy/internal/i18n"
	"sitzy/internal/middleware"
	"sitzy/internal/models"
	"sitzy/internal/services"
	"sitzy/internal/utils"
)

type SeatHandler struct {
	seatService services.SeatService
	localizer   *i18n.Localizer
}

func NewSeatHandler(seatService services.SeatService, localizer *i18n.Localizer) *SeatHandler {
	return &SeatHandler{
		seatService: seatService,
		localizer:   localizer,
	}
}

type SeatRequest struct {
	Position int `json:"position" binding:"required,min=1"`
}

// SeatResponse is a seat row resolved for display: occupant name and the
// locale-specific label for (layout, position).
type SeatResponse struct {
	ID            uuid.UUID `json:"id"`
	CarID         uuid.UUID `json:"car_id"`
	UserID        uuid.UUID `json:"user_id"`
	Position      int       `json:"position"`
	PositionLabel string    `json:"position_label"`
	OccupantName  string    `json:"occupant_name,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func (h *SeatHandler) seatResponse(c *gin.Context, seat *models.Seat, layout models.CarLayout, occupantName string) *SeatResponse {
	return &SeatResponse{
		ID:            seat.ID,
		CarID:         seat.CarID,
		UserID:        seat.UserID,
		Position:      seat.Position,
		PositionLabel: h.localizer.PositionLabel(layout, seat.Position, middleware.Lang(c)),
		OccupantName:  occupantName,
		CreatedAt:     seat.CreatedAt,
	}
}

// ListSeats returns the seat occupancy of the caller's car.
func (h *SeatHandler) ListSeats(c *gin.Context) {
	user, ok := currentUser(c, h.localizer)
	if !ok {
		return
	}

	car, views, err := h.seatService.List(c.Request.Context(), user)
	if err != nil {
		respondError(c, h.localizer, err)
		return
	}

	seats := make([]*SeatResponse, 0, len(views))
	for _, view := range views {
		seats = append(seats, h.seatResponse(c, view.Seat, car.Layout, view.OccupantName))
	}

	utils.SuccessResponse(c, "Seats retrieved", seats)
}

func (h *SeatHandler) ChooseSeat(c *gin.Context) {
	user, ok := currentUser(c, h.localizer)
	if !ok {
		return
	}

	var request SeatRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ValidationErrorResponse(c, err.Error())
		return
	}

	seat, car, err := h.seatService.Choose(c.Request.Context(), user, request.Position)
	if err != nil {
		respondError(c, h.localizer, err)
		return
	}

	utils.CreatedResponse(c, "Seat chosen", h.seatResponse(c, seat, car.Layout, user.DisplayName()))
}

func (h *SeatHandler) ChangeSeat(c *gin.Context) {
	user, ok := currentUser(c, h.localizer)
	if !ok {
		return
	}

	var request SeatRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ValidationErrorResponse(c, err.Error())
		return
	}

	seat, car, err := h.seatService.Change(c.Request.Context(), user, request.Position)
	if err != nil {
		respondError(c, h.localizer, err)
		return
	}

	utils.SuccessResponse(c, "Seat changed", h.seatResponse(c, seat, car.Layout, user.DisplayName()))
}

func (h *SeatHandler) ReleaseSeat(c *gin.Context) {
	user, ok := currentUser(c, h.localizer)
	if !ok {
		return
	}

	if err := h.seatService.Release(c.Request.Context(), user); err != nil {
		respondError(c, h.localizer, err)
		return
	}

	utils.NoContentResponse(c)
}
