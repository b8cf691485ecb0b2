package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/neocodez/portfolio/logger"
	"github.com/neocodez/portfolio/repositories"
	"github.com/neocodez/portfolio/services"
)

// ShowErrorDetails adds the underlying error text to 5xx responses. main
// turns it off in production.
var ShowErrorDetails = true

type errorMapping struct {
	target  error
	status  int
	message string
}

// errorStatusMap is checked in order; the first errors.Is match wins.
var errorStatusMap = []errorMapping{
	{repositories.ErrDuplicateEmail, http.StatusBadRequest, "User already exists"},
	{services.ErrInvalidOrExpiredCode, http.StatusBadRequest, "Invalid or expired OTP"},

	{services.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{services.ErrInvalidOrExpiredResetToken, http.StatusUnauthorized, "Invalid or expired reset token"},
	{services.ErrUnauthenticated, http.StatusUnauthorized, "not authorized, token failed"},

	{repositories.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{repositories.ErrDocumentNotFound, http.StatusNotFound, "Not found"},

	{repositories.ErrDuplicateSlug, http.StatusConflict, "Slug already exists"},

	{services.ErrDeliveryFailure, http.StatusInternalServerError, "Failed to send email"},
	{services.ErrRegistrationFailed, http.StatusInternalServerError, "Registration failed"},
}

func statusFromError(err error) (int, string) {
	for _, m := range errorStatusMap {
		if errors.Is(err, m.target) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, "Server error"
}

func respondError(c *gin.Context, err error) {
	respondResourceError(c, "", err)
}

// respondResourceError names resource in the not-found message, e.g.
// "Project not found".
func respondResourceError(c *gin.Context, resource string, err error) {
	var ve *services.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message, "field": ve.Field})
		return
	}

	status, message := statusFromError(err)
	if resource != "" && errors.Is(err, repositories.ErrDocumentNotFound) {
		message = resource + " not found"
	}

	body := gin.H{"error": message}
	if status >= http.StatusInternalServerError {
		logger.FromContext(c.Request.Context()).Error().Err(err).
			Str("path", c.FullPath()).
			Msg("request failed")
		if ShowErrorDetails {
			body["details"] = err.Error()
		}
	}
	c.JSON(status, body)
}
