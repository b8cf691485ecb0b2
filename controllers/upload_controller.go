package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/neocodez/portfolio/logger"
	"github.com/neocodez/portfolio/utils"
)

const uploadPrefix = "uploads"

// POST /upload, multipart field "image". A nil store means uploads are
// switched off (STORAGE_DRIVER=none).
func UploadImage(store utils.ObjectStore, validator *utils.FileValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store == nil {
			c.JSON(http.StatusNotImplemented, gin.H{"error": "File uploads are not configured"})
			return
		}

		fh, err := c.FormFile("image")
		if err != nil || fh == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please upload a file"})
			return
		}

		mimeType, err := validator.ValidateFile(fh)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		upload, err := utils.UploadFile(c.Request.Context(), store, uploadPrefix, fh, mimeType)
		if err != nil {
			logger.FromContext(c.Request.Context()).Error().Err(err).Str("filename", fh.Filename).Msg("upload failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload file"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":  "File uploaded successfully",
			"filename": upload.ObjectName,
			"path":     upload.PublicURL,
		})
	}
}
