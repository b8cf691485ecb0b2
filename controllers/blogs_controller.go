package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/neocodez/portfolio/dto"
	"github.com/neocodez/portfolio/middleware"
	"github.com/neocodez/portfolio/repositories"
)

// GET /blogs?page=&limit=&tag=&status=
func GetBlogs(blogs BlogAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, ok := statusFilter(c)
		if !ok {
			return
		}
		page, limit := pageQuery(c)

		items, total, err := blogs.List(c.Request.Context(), repositories.BlogFilter{
			Tag:    strings.TrimSpace(c.Query("tag")),
			Status: status,
			Page:   page,
			Limit:  limit,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, pagedResponse("blogs", items, total, page, limit))
	}
}

// GET /blogs/:slug counts as a view.
func GetBlog(blogs BlogAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		blog, err := blogs.View(c.Request.Context(), c.Param("slug"), middleware.IsAdmin(c))
		if err != nil {
			respondResourceError(c, "Blog", err)
			return
		}
		c.JSON(http.StatusOK, blog)
	}
}

// POST /blogs
func CreateBlog(blogs BlogAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.CreateBlogDTO
		if !bindJSON(c, &body) {
			return
		}

		blog, err := blogs.Create(c.Request.Context(), middleware.UserID(c), body)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, blog)
	}
}

// PUT /blogs/:id
func UpdateBlog(blogs BlogAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.UpdateBlogDTO
		if !bindJSON(c, &body) {
			return
		}

		blog, err := blogs.Update(c.Request.Context(), c.Param("id"), body)
		if err != nil {
			respondResourceError(c, "Blog", err)
			return
		}
		c.JSON(http.StatusOK, blog)
	}
}

// DELETE /blogs/:id
func DeleteBlog(blogs BlogAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := blogs.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondResourceError(c, "Blog", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Blog removed"})
	}
}
