package repositories

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrDuplicateEmail   = errors.New("user already exists")
	ErrDocumentNotFound = errors.New("document not found")
	ErrDuplicateSlug    = errors.New("slug already exists")
)
