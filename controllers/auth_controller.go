package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/neocodez/portfolio/dto"
	"github.com/neocodez/portfolio/middleware"
)

// POST /auth/register
func Register(auth AuthAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.RegisterDTO
		if !bindJSON(c, &body) {
			return
		}

		result, err := auth.Register(c.Request.Context(), body.Name, body.Email, body.Password)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, result)
	}
}

// POST /auth/login
func Login(auth AuthAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.LoginDTO
		if !bindJSON(c, &body) {
			return
		}

		result, err := auth.Login(c.Request.Context(), body.Email, body.Password)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// GET /auth/profile
func GetProfile(auth AuthAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := middleware.BearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "not authorized, no token"})
			return
		}

		profile, err := auth.Profile(c.Request.Context(), token)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

// POST /auth/forgot-password
func ForgotPassword(auth AuthAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.ForgotPasswordDTO
		if !bindJSON(c, &body) {
			return
		}

		if err := auth.ForgotPassword(c.Request.Context(), body.Email); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "OTP sent to email"})
	}
}

// POST /auth/verify-otp
func VerifyOtp(auth AuthAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.VerifyOtpDTO
		if !bindJSON(c, &body) {
			return
		}

		resetToken, err := auth.VerifyOtp(c.Request.Context(), body.Email, body.Otp)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"resetToken": resetToken})
	}
}

// POST /auth/reset-password
func ResetPassword(auth AuthAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.ResetPasswordDTO
		if !bindJSON(c, &body) {
			return
		}

		if err := auth.ResetPassword(c.Request.Context(), body.ResetToken, body.NewPassword); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Password reset successful"})
	}
}
