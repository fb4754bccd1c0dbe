package handlers

import (
	"errors"
	"net/http"

	"turfadmin/backend"
	"turfadmin/services/slots"
	"turfadmin/utils"

	"github.com/gin-gonic/gin"
)

// sessionFrom pulls the AdminSession set by the auth middleware. Handlers
// behind the session group can rely on it being present; a miss means the
// middleware was skipped, which is a wiring bug.
func sessionFrom(c *gin.Context) (*utils.AdminSession, bool) {
	v, ok := c.Get("session")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing session"})
		return nil, false
	}
	sess, ok := v.(*utils.AdminSession)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid session type"})
		return nil, false
	}
	return sess, true
}

// writeServiceError maps service-layer failures onto HTTP statuses: caller
// mistakes become 400, backend rejections keep their meaning, and everything
// else is a gateway failure the client may retry.
func writeServiceError(c *gin.Context, err error) {
	var vErr *slots.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message})
		return
	}
	if errors.Is(err, backend.ErrUnauthorized) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Backend rejected the session token"})
		return
	}
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		c.JSON(http.StatusBadGateway, gin.H{"error": apiErr.Message})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
}
