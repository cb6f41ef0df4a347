package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sitzy/internal/i18n"
	"sitzy/internal/middleware"
	"sitzy/internal/services"
	"sitzy/internal/utils"
)

type InvitationHandler struct {
	invitationService services.InvitationService
	localizer         *i18n.Localizer
}

func NewInvitationHandler(invitationService services.InvitationService, localizer *i18n.Localizer) *InvitationHandler {
	return &InvitationHandler{
		invitationService: invitationService,
		localizer:         localizer,
	}
}

type CreateInvitationRequest struct {
	InvitedEmail string `json:"invited_email" binding:"required,email"`
}

// CreateInvitation issues an invitation for the car; owner only.
func (h *InvitationHandler) CreateInvitation(c *gin.Context) {
	user, ok := currentUser(c, h.localizer)
	if !ok {
		return
	}

	carID, err := uuid.Parse(c.Param("car_id"))
	if err != nil {
		utils.ValidationErrorResponse(c, h.localizer.Message("invalid_car_id", middleware.Lang(c)))
		return
	}

	var request CreateInvitationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ValidationErrorResponse(c, err.Error())
		return
	}

	invitation, err := h.invitationService.Create(c.Request.Context(), user.ID, carID, request.InvitedEmail)
	if err != nil {
		respondError(c, h.localizer, err)
		return
	}

	utils.SuccessResponse(c, "Invitation created", invitation)
}

// GetInvitation is the public token lookup an invitee follows from the
// invitation link.
func (h *InvitationHandler) GetInvitation(c *gin.Context) {
	invitation, err := h.invitationService.GetByToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		respondError(c, h.localizer, err)
		return
	}

	utils.SuccessResponse(c, "Invitation retrieved", invitation)
}

func (h *InvitationHandler) AcceptInvitation(c *gin.Context) {
	user, ok := currentUser(c, h.localizer)
	if !ok {
		return
	}

	invitation, err := h.invitationService.Accept(c.Request.Context(), c.Param("token"), user)
	if err != nil {
		respondError(c, h.localizer, err)
		return
	}

	utils.SuccessResponse(c, "Invitation accepted", invitation)
}

func (h *InvitationHandler) RejectInvitation(c *gin.Context) {
	user, ok := currentUser(c, h.localizer)
	if !ok {
		return
	}

	invitation, err := h.invitationService.Reject(c.Request.Context(), c.Param("token"), user)
	if err != nil {
		respondError(c, h.localizer, err)
		return
	}

	utils.SuccessResponse(c, "Invitation rejected", invitation)
}

func (h *InvitationHandler) CancelInvitation(c *gin.Context) {
	user, ok := currentUser(c, h.localizer)
	if !ok {
		return
	}

	if err := h.invitationService.Cancel(c.Request.Context(), c.Param("token"), user.ID); err != nil {
		respondError(c, h.localizer, err)
		return
	}

	utils.NoContentResponse(c)
}

// ListSentInvitations lists a car's invitations for its owner.
func (h *InvitationHandler) ListSentInvitations(c *gin.Context) {
	user, ok := currentUser(c, h.localizer)
	if !ok {
		return
	}

	carID, err := uuid.Parse(c.Param("car_id"))
	if err != nil {
		utils.ValidationErrorResponse(c, h.localizer.Message("invalid_car_id", middleware.Lang(c)))
		return
	}

	invitations, err := h.invitationService.ListSent(c.Request.Context(), user.ID, carID)
	if err != nil {
		respondError(c, h.localizer, err)
		return
	}

	utils.SuccessResponse(c, "Invitations retrieved", invitations)
}

// ListReceivedInvitations lists invitations addressed to the caller's email,
// newest first.
func (h *InvitationHandler) ListReceivedInvitations(c *gin.Context) {
	user, ok := currentUser(c, h.localizer)
	if !ok {
		return
	}

	invitations, err := h.invitationService.ListReceived(c.Request.Context(), user)
	if err != nil {
		respondError(c, h.localizer, err)
		return
	}

	utils.SuccessResponse(c, "Invitations retrieved", invitations)
}
