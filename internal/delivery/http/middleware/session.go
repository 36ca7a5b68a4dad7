package middleware

import (
	"net/http"

	"talent-sift/internal/delivery/http/response"
	"talent-sift/internal/domain"
	"talent-sift/pkg/logger"
	"talent-sift/pkg/security"
	"talent-sift/pkg/session"

	"github.com/gin-gonic/gin"
)

// Session resolves the browser session from its signed cookie, starting a new
// one when the cookie is missing, expired or tampered with
func Session(manager *session.Manager, secureCookie bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetString(string(domain.KeyRequestID))

		if token, err := c.Cookie(session.CookieName); err == nil && token != "" {
			sessionID, err := manager.Parse(token)
			if err == nil {
				c.Set(string(domain.KeySessionID), sessionID)
				c.Next()
				return
			}
			security.DefaultLogger().LogSessionRejected(c.ClientIP(), c.Request.UserAgent(), requestID, err.Error())
		}

		sessionID, token, err := manager.Issue()
		if err != nil {
			logger.Log.Error("Failed to issue session", "error", err)
			response.Error(c, http.StatusInternalServerError, "Failed to start session", nil)
			c.Abort()
			return
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(
			session.CookieName,
			token,
			int(manager.TTL().Seconds()),
			"/",
			"",
			secureCookie,
			true, // HttpOnly
		)
		security.DefaultLogger().LogSessionStarted(sessionID, c.ClientIP(), requestID)
		c.Set(string(domain.KeySessionID), sessionID)
		c.Next()
	}
}

// SessionID returns the session resolved by Session, or ""
func SessionID(c *gin.Context) string {
	return c.GetString(string(domain.KeySessionID))
}
