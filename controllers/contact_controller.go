package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/neocodez/portfolio/dto"
)

// POST /contact
func SubmitContact(contact ContactAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.ContactDTO
		if !bindJSON(c, &body) {
			return
		}

		msg, err := contact.Submit(c.Request.Context(), body)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message": "Contact form submitted successfully",
			"id":      msg.ID.Hex(),
		})
	}
}

// GET /contact?page=&limit=
func GetContactMessages(contact ContactAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit := pageQuery(c)

		items, total, err := contact.List(c.Request.Context(), page, limit)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, pagedResponse("messages", items, total, page, limit))
	}
}

// DELETE /contact/:id
func DeleteContactMessage(contact ContactAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := contact.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondResourceError(c, "Message", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Message removed"})
	}
}
