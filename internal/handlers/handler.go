// Package handlers adapts the HTTP/JSON surface to the service layer:
// request binding, the authenticated-user lookup, and the mapping from
// domain errors to contract status codes with localized messages.
package handlers

import (
	"github.com/gin-gonic/gin"

	"sitzy/internal/i18n"
	"sitzy/internal/middleware"
	"sitzy/internal/models"
	"sitzy/internal/utils"
)

func respondError(c *gin.Context, loc *i18n.Localizer, err error) {
	lang := middleware.Lang(c)
	if appErr, ok := utils.AsAppError(err); ok {
		utils.AppErrorResponse(c, appErr, loc.Message(appErr.MessageKey, lang))
		return
	}
	utils.InternalServerErrorResponse(c, loc.Message("internal_error", lang))
}

func currentUser(c *gin.Context, loc *i18n.Localizer) (*models.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, loc.Message("invalid_token", middleware.Lang(c)))
		return nil, false
	}
	return user, true
}
