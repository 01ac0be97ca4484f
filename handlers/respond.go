package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/JabirC/Closet/core"
	"github.com/JabirC/Closet/global"
	"github.com/JabirC/Closet/middlewares"
	"github.com/JabirC/Closet/utils"
)

// respondError maps domain errors to status codes. Unknown errors are logged
// and reported as a bare 500 so internals never reach the client.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": core.ErrInvalidCredentials.Error()})
	case errors.Is(err, core.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	case errors.Is(err, core.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, core.ErrQuotaExceeded):
		c.JSON(http.StatusForbidden, gin.H{"error": core.ErrQuotaExceeded.Error()})
	case errors.Is(err, core.ErrValidation):
		msg := strings.TrimPrefix(err.Error(), core.ErrValidation.Error()+": ")
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
	default:
		logrus.WithError(err).WithFields(logrus.Fields{
			"request_id": c.GetString(global.CtxRequestIDKey),
			"path":       c.FullPath(),
		}).Error("request failed")
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// bindJSON decodes and validates the body, answering 400 itself on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.ValidationMessage(err)})
		return false
	}
	return true
}

// currentUser reads the id set by middlewares.Auth; it answers 401 when absent.
func currentUser(c *gin.Context) (uint, bool) {
	uid, ok := middlewares.UserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	}
	return uid, ok
}

// pathID parses a positive numeric :id, answering 400 otherwise.
func pathID(c *gin.Context) (uint, bool) {
	id, err := parseUint(c.Param("id"))
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// parseUint safely converts a numeric string to uint.
func parseUint(s string) (uint, error) {
	id64, err := strconv.ParseUint(s, 10, 0)
	return uint(id64), err
}
