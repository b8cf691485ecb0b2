package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/neocodez/portfolio/middleware"
	"github.com/neocodez/portfolio/models"
	"github.com/neocodez/portfolio/utils"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// statusFilter returns the status a list request may see. Anonymous callers
// only ever get published content; admins may filter or see everything.
func statusFilter(c *gin.Context) (models.PublishStatus, bool) {
	if !middleware.IsAdmin(c) {
		return models.StatusPublished, true
	}

	raw := strings.TrimSpace(c.Query("status"))
	if raw == "" {
		return "", true
	}
	status := models.PublishStatus(raw)
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be one of: draft, published", "field": "status"})
		return "", false
	}
	return status, true
}

func pageQuery(c *gin.Context) (page, limit int) {
	return utils.Page(c.Query("page"), c.Query("limit"), defaultPageSize, maxPageSize)
}

func pagedResponse(key string, items any, total int64, page, limit int) gin.H {
	return gin.H{
		key:           items,
		"totalPages":  utils.TotalPages(total, limit),
		"currentPage": page,
		"total":       total,
	}
}
