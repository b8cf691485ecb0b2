package services

import (
	"context"
	"strings"
	"time"

	"github.com/neocodez/portfolio/dto"
	"github.com/neocodez/portfolio/models"
	"github.com/neocodez/portfolio/repositories"
)

type BlogStore interface {
	List(ctx context.Context, f repositories.BlogFilter) ([]models.Blog, int64, error)
	ViewBySlug(ctx context.Context, slug string, publishedOnly bool) (*models.Blog, error)
	FindByID(ctx context.Context, id string) (*models.Blog, error)
	Create(ctx context.Context, b *models.Blog) error
	Replace(ctx context.Context, b *models.Blog) error
	Delete(ctx context.Context, id string) error
}

// UserLookup resolves the author of a post.
type UserLookup interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
}

type BlogService struct {
	blogs BlogStore
	users UserLookup
	now   func() time.Time
}

func NewBlogService(blogs BlogStore, users UserLookup) *BlogService {
	return &BlogService{blogs: blogs, users: users, now: func() time.Time { return time.Now().UTC() }}
}

func (s *BlogService) List(ctx context.Context, f repositories.BlogFilter) ([]models.Blog, int64, error) {
	return s.blogs.List(ctx, f)
}

// View returns the post with the given slug and counts the read.
func (s *BlogService) View(ctx context.Context, slug string, includeDrafts bool) (*models.Blog, error) {
	return s.blogs.ViewBySlug(ctx, slug, !includeDrafts)
}

func (s *BlogService) Create(ctx context.Context, authorID string, in dto.CreateBlogDTO) (*models.Blog, error) {
	slug, err := slugFor(in.Title)
	if err != nil {
		return nil, err
	}
	status, err := statusOrDraft(in.Status)
	if err != nil {
		return nil, err
	}

	author, err := s.users.FindByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	readTime := in.ReadTime
	if readTime <= 0 {
		readTime = models.DefaultBlogReadTime
	}

	now := s.now()
	b := &models.Blog{
		Title:         strings.TrimSpace(in.Title),
		Slug:          slug,
		Content:       in.Content,
		Excerpt:       in.Excerpt,
		AuthorID:      author.ID,
		AuthorName:    author.Name,
		Tags:          cleanList(in.Tags),
		Status:        status,
		FeaturedImage: in.FeaturedImage,
		ReadTime:      readTime,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.blogs.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *BlogService) Update(ctx context.Context, id string, in dto.UpdateBlogDTO) (*models.Blog, error) {
	b, err := s.blogs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil && strings.TrimSpace(*in.Title) != b.Title {
		slug, err := slugFor(*in.Title)
		if err != nil {
			return nil, err
		}
		b.Title = strings.TrimSpace(*in.Title)
		b.Slug = slug
	}
	if in.Content != nil {
		b.Content = *in.Content
	}
	if in.Excerpt != nil {
		b.Excerpt = *in.Excerpt
	}
	if in.Tags != nil {
		b.Tags = cleanList(*in.Tags)
	}
	if in.Status != nil {
		status, err := statusOrDraft(*in.Status)
		if err != nil {
			return nil, err
		}
		b.Status = status
	}
	if in.FeaturedImage != nil {
		b.FeaturedImage = *in.FeaturedImage
	}
	if in.ReadTime != nil && *in.ReadTime > 0 {
		b.ReadTime = *in.ReadTime
	}
	b.UpdatedAt = s.now()

	if err := s.blogs.Replace(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *BlogService) Delete(ctx context.Context, id string) error {
	return s.blogs.Delete(ctx, id)
}
