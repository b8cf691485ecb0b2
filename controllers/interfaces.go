package controllers

import (
	"context"

	"github.com/neocodez/portfolio/dto"
	"github.com/neocodez/portfolio/models"
	"github.com/neocodez/portfolio/repositories"
	"github.com/neocodez/portfolio/services"
)

type AuthAPI interface {
	Register(ctx context.Context, name, email, password string) (*services.AuthResult, error)
	Login(ctx context.Context, email, password string) (*services.AuthResult, error)
	Profile(ctx context.Context, bearerToken string) (*models.UserSummary, error)
	ForgotPassword(ctx context.Context, email string) error
	VerifyOtp(ctx context.Context, email, code string) (string, error)
	ResetPassword(ctx context.Context, resetToken, newPassword string) error
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
}

type ProjectAPI interface {
	List(ctx context.Context, f repositories.ProjectFilter) ([]models.Project, error)
	GetBySlug(ctx context.Context, slug string, includeDrafts bool) (*models.Project, error)
	Create(ctx context.Context, in dto.CreateProjectDTO) (*models.Project, error)
	Update(ctx context.Context, id string, in dto.UpdateProjectDTO) (*models.Project, error)
	Delete(ctx context.Context, id string) error
}

type BlogAPI interface {
	List(ctx context.Context, f repositories.BlogFilter) ([]models.Blog, int64, error)
	View(ctx context.Context, slug string, includeDrafts bool) (*models.Blog, error)
	Create(ctx context.Context, authorID string, in dto.CreateBlogDTO) (*models.Blog, error)
	Update(ctx context.Context, id string, in dto.UpdateBlogDTO) (*models.Blog, error)
	Delete(ctx context.Context, id string) error
}

type GuideAPI interface {
	List(ctx context.Context, f repositories.GuideFilter) ([]models.Guide, int64, error)
	View(ctx context.Context, slug string, includeDrafts bool) (*models.Guide, error)
	Create(ctx context.Context, authorID string, in dto.CreateGuideDTO) (*models.Guide, error)
	Update(ctx context.Context, id string, in dto.UpdateGuideDTO) (*models.Guide, error)
	Delete(ctx context.Context, id string) error
}

type ContactAPI interface {
	Submit(ctx context.Context, in dto.ContactDTO) (*models.ContactMessage, error)
	List(ctx context.Context, page, limit int) ([]models.ContactMessage, int64, error)
	Delete(ctx context.Context, id string) error
}
