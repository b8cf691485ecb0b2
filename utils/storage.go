package utils

import (
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/neocodez/portfolio/models"
)

// ObjectStore is the upload destination. GCSStore and R2Store implement it.
type ObjectStore interface {
	Put(ctx context.Context, objectName, contentType string, body io.Reader) error
	PublicURL(objectName string) string
	Close() error
}

// UploadFile stores fileHeader under prefix with a random object name and
// returns where it ended up.
func UploadFile(
	ctx context.Context,
	store ObjectStore,
	prefix string,
	fileHeader *multipart.FileHeader,
	contentType string,
) (*models.Upload, error) {
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext == "" {
		ext = ".bin"
	}

	if contentType == "" {
		contentType = fileHeader.Header.Get("Content-Type")
	}
	if contentType == "" {
		contentType = mime.TypeByExtension(ext)
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	objectName := fmt.Sprintf("%s/%s%s", strings.Trim(prefix, "/"), uuid.New().String(), ext)
	if err := store.Put(ctx, objectName, contentType, file); err != nil {
		return nil, fmt.Errorf("upload %s: %w", fileHeader.Filename, err)
	}

	return &models.Upload{
		ObjectName: objectName,
		PublicURL:  store.PublicURL(objectName),
		MimeType:   contentType,
		SizeBytes:  fileHeader.Size,
	}, nil
}
