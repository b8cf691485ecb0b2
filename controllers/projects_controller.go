package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/neocodez/portfolio/dto"
	"github.com/neocodez/portfolio/middleware"
	"github.com/neocodez/portfolio/repositories"
	"github.com/neocodez/portfolio/utils"
)

// GET /projects?featured=&status=&technology=
func GetProjects(projects ProjectAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		featured, err := utils.ParseBoolQuery(c.Query("featured"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "featured must be true or false", "field": "featured"})
			return
		}
		status, ok := statusFilter(c)
		if !ok {
			return
		}

		items, err := projects.List(c.Request.Context(), repositories.ProjectFilter{
			Featured:   featured,
			Status:     status,
			Technology: strings.TrimSpace(c.Query("technology")),
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// GET /projects/:slug
func GetProject(projects ProjectAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		project, err := projects.GetBySlug(c.Request.Context(), c.Param("slug"), middleware.IsAdmin(c))
		if err != nil {
			respondResourceError(c, "Project", err)
			return
		}
		c.JSON(http.StatusOK, project)
	}
}

// POST /projects
func CreateProject(projects ProjectAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.CreateProjectDTO
		if !bindJSON(c, &body) {
			return
		}

		project, err := projects.Create(c.Request.Context(), body)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, project)
	}
}

// PUT /projects/:id
func UpdateProject(projects ProjectAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.UpdateProjectDTO
		if !bindJSON(c, &body) {
			return
		}

		project, err := projects.Update(c.Request.Context(), c.Param("id"), body)
		if err != nil {
			respondResourceError(c, "Project", err)
			return
		}
		c.JSON(http.StatusOK, project)
	}
}

// DELETE /projects/:id
func DeleteProject(projects ProjectAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := projects.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondResourceError(c, "Project", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Project removed"})
	}
}
