package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/tokokita/tokokita-admin-service/internal/models"
	"github.com/tokokita/tokokita-admin-service/internal/repository"
)

// sessionCookie is the opaque session id handed to the browser. The bearer
// token itself never leaves the server.
const sessionCookie = "admin_session"

const sessionContextKey = "session"

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /api/login: exchange credentials upstream, store the
// resulting session and hand back a cookie plus the user profile.
func (h *Handlers) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	result, err := h.api.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.logger.WithFields(logrus.Fields{"username": req.Username}).Warn("Login rejected")
		handleError(c, err)
		return
	}

	sess := &models.Session{Token: result.Token, User: result.User}
	id, err := h.sessions.Create(c.Request.Context(), sess)
	if err != nil {
		handleError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, id, 0, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"user": result.User})
}

// Logout handles POST /api/logout: invalidate the token upstream, drop the
// stored session and clear the cookie. A failed upstream call still clears
// the local session.
func (h *Handlers) Logout(c *gin.Context) {
	id, err := c.Cookie(sessionCookie)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"status": "signed out"})
		return
	}

	if sess, err := h.sessions.Get(c.Request.Context(), id); err == nil {
		if err := h.api.Logout(c.Request.Context(), sess); err != nil {
			h.logger.WithFields(logrus.Fields{"error": err.Error()}).Warn("Upstream logout failed")
		}
	}

	if err := h.sessions.Delete(c.Request.Context(), id); err != nil {
		h.logger.WithFields(logrus.Fields{"error": err.Error()}).Warn("Failed to delete session")
	}

	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"status": "signed out"})
}

// Me handles GET /api/me: the signed-in user's profile.
func (h *Handlers) Me(c *gin.Context) {
	sess := sessionFrom(c)
	c.JSON(http.StatusOK, gin.H{"user": sess.User})
}

// RequireSession resolves the session cookie into a *models.Session and
// aborts with 401 when it is missing or expired.
func (h *Handlers) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(sessionCookie)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "sign in required"})
			return
		}

		sess, err := h.sessions.Get(c.Request.Context(), id)
		if err != nil {
			if err == repository.ErrSessionNotFound {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "sign in required"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		c.Set(sessionContextKey, sess)
		c.Next()
	}
}

// sessionFrom returns the session resolved by RequireSession. Only valid
// on routes behind that middleware.
func sessionFrom(c *gin.Context) *models.Session {
	sess, _ := c.Get(sessionContextKey)
	return sess.(*models.Session)
}
