package handler

import (
	"errors"
	"net/http"
	"strconv"

	"forum/internal/middleware"
	"forum/internal/service"

	"github.com/gin-gonic/gin"
)

// Paging defaults and caps. Out-of-range values are silently clamped,
// never rejected; clients rely on that.
const (
	postPageSize       = 5
	postPageSizeMax    = 50
	commentPageSize    = 10
	commentPageSizeMax = 100
)

func paging(c *gin.Context, defaultSize, maxSize int) (page, size int, search string) {
	page, _ = strconv.Atoi(c.DefaultQuery("pageNumber", "1"))
	size, _ = strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(defaultSize)))
	search = c.Query("searchTerm")

	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = defaultSize
	}
	if size > maxSize {
		size = maxSize
	}
	return page, size, search
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// actor converts the verified token claims into the service-level
// identity. AuthMiddleware guarantees claims exist on protected routes.
func actor(c *gin.Context) (service.Actor, bool) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return service.Actor{}, false
	}
	return service.Actor{
		ID:       claims.UserID,
		Username: claims.Username,
		Role:     claims.Role,
	}, true
}

// serviceError maps service sentinels onto HTTP statuses. Everything
// unrecognized, including a failed archive transaction, is an opaque 500.
func serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPostNotFound), errors.Is(err, service.ErrCommentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error. Please try again."})
	}
}
