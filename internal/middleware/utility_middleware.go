package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sitzy/internal/i18n"
	"sitzy/pkg/logger"
)

const ContextLangKey = "lang"

// CORSMiddleware configures CORS headers for the configured origins.
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	allowAll := len(allowedOrigins) == 0
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		if origin == "*" {
			allowAll = true
		}
		allowed[origin] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if allowAll {
			c.Header("Access-Control-Allow-Origin", "*")
		} else if allowed[origin] {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
		}
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, Accept-Language, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// RequestIDMiddleware tags every request, reusing the caller's ID when one
// was sent, and threads it into the request context for log correlation.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		ctx := logger.ContextWithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// LanguageMiddleware resolves the response language from the Accept-Language
// header or a lang cookie and stores it for the handlers.
func LanguageMiddleware(loc *i18n.Localizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.GetHeader("Accept-Language")
		if lang == "" {
			if cookie, err := c.Cookie("lang"); err == nil {
				lang = cookie
			}
		}
		c.Set(ContextLangKey, loc.Normalize(lang))
		c.Next()
	}
}

// Lang returns the request language set by LanguageMiddleware.
func Lang(c *gin.Context) string {
	if lang := c.GetString(ContextLangKey); lang != "" {
		return lang
	}
	return i18n.LangCzech
}

// RequestLogger logs each completed request with its outcome.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		entry := log.WithFields(map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.FullPath(),
			"status":     c.Writer.Status(),
			"request_id": c.GetString("request_id"),
		})
		if len(c.Errors) > 0 {
			entry.Warn(strings.Join(c.Errors.Errors(), "; "))
			return
		}
		entry.Debug("request handled")
	}
}
