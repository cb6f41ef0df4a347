package handlers

import (
	"github.com/gin-gonic/gin"

	"sitzy/internal/i18n"
	"sitzy/internal/services"
	"sitzy/internal/utils"
)

type AuthHandler struct {
	authService services.AuthService
	localizer   *i18n.Localizer
}

func NewAuthHandler(authService services.AuthService, localizer *i18n.Localizer) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		localizer:   localizer,
	}
}

// Register creates a user account with a bcrypt-hashed password.
func (h *AuthHandler) Register(c *gin.Context) {
	var request services.RegisterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ValidationErrorResponse(c, err.Error())
		return
	}

	user, err := h.authService.Register(c.Request.Context(), &request)
	if err != nil {
		respondError(c, h.localizer, err)
		return
	}

	utils.SuccessResponse(c, "User registered", user)
}

// Login verifies credentials and issues a JWT token pair.
func (h *AuthHandler) Login(c *gin.Context) {
	var request services.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ValidationErrorResponse(c, err.Error())
		return
	}

	pair, err := h.authService.Login(c.Request.Context(), &request)
	if err != nil {
		respondError(c, h.localizer, err)
		return
	}

	utils.SuccessResponse(c, "Login successful", pair)
}
