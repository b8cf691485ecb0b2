package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/neocodez/portfolio/dto"
	"github.com/neocodez/portfolio/middleware"
	"github.com/neocodez/portfolio/repositories"
)

// GET /guides?project=&status=&page=&limit=
func GetGuides(guides GuideAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, ok := statusFilter(c)
		if !ok {
			return
		}
		page, limit := pageQuery(c)

		items, total, err := guides.List(c.Request.Context(), repositories.GuideFilter{
			Status:    status,
			ProjectID: strings.TrimSpace(c.Query("project")),
			Page:      page,
			Limit:     limit,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, pagedResponse("guides", items, total, page, limit))
	}
}

// GET /guides/:slug counts as a view.
func GetGuide(guides GuideAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		guide, err := guides.View(c.Request.Context(), c.Param("slug"), middleware.IsAdmin(c))
		if err != nil {
			respondResourceError(c, "Guide", err)
			return
		}
		c.JSON(http.StatusOK, guide)
	}
}

// POST /guides
func CreateGuide(guides GuideAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.CreateGuideDTO
		if !bindJSON(c, &body) {
			return
		}

		guide, err := guides.Create(c.Request.Context(), middleware.UserID(c), body)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, guide)
	}
}

// PUT /guides/:id
func UpdateGuide(guides GuideAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.UpdateGuideDTO
		if !bindJSON(c, &body) {
			return
		}

		guide, err := guides.Update(c.Request.Context(), c.Param("id"), body)
		if err != nil {
			respondResourceError(c, "Guide", err)
			return
		}
		c.JSON(http.StatusOK, guide)
	}
}

// DELETE /guides/:id
func DeleteGuide(guides GuideAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := guides.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondResourceError(c, "Guide", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Guide removed"})
	}
}
