package services

import (
	"context"
	"strings"
	"time"

	"github.com/neocodez/portfolio/dto"
	"github.com/neocodez/portfolio/models"
	"github.com/neocodez/portfolio/repositories"
	"github.com/neocodez/portfolio/utils"
)

type ProjectStore interface {
	List(ctx context.Context, f repositories.ProjectFilter) ([]models.Project, error)
	FindBySlug(ctx context.Context, slug string, publishedOnly bool) (*models.Project, error)
	FindByID(ctx context.Context, id string) (*models.Project, error)
	Create(ctx context.Context, p *models.Project) error
	Replace(ctx context.Context, p *models.Project) error
	Delete(ctx context.Context, id string) error
}

type ProjectService struct {
	projects ProjectStore
	now      func() time.Time
}

func NewProjectService(projects ProjectStore) *ProjectService {
	return &ProjectService{projects: projects, now: func() time.Time { return time.Now().UTC() }}
}

// slugFor derives the slug for title and rejects titles that yield none.
func slugFor(title string) (string, error) {
	slug := utils.GenerateSlug(title)
	if slug == "" {
		return "", newValidationError("title", "title must contain letters or digits")
	}
	return slug, nil
}

func statusOrDraft(raw string) (models.PublishStatus, error) {
	if raw == "" {
		return models.StatusDraft, nil
	}
	status := models.PublishStatus(raw)
	if !status.Valid() {
		return "", newValidationError("status", "status must be draft or published")
	}
	return status, nil
}

func cleanList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func (s *ProjectService) List(ctx context.Context, f repositories.ProjectFilter) ([]models.Project, error) {
	return s.projects.List(ctx, f)
}

// GetBySlug hides drafts unless includeDrafts is set.
func (s *ProjectService) GetBySlug(ctx context.Context, slug string, includeDrafts bool) (*models.Project, error) {
	return s.projects.FindBySlug(ctx, slug, !includeDrafts)
}

func (s *ProjectService) Create(ctx context.Context, in dto.CreateProjectDTO) (*models.Project, error) {
	slug, err := slugFor(in.Title)
	if err != nil {
		return nil, err
	}
	status, err := statusOrDraft(in.Status)
	if err != nil {
		return nil, err
	}

	now := s.now()
	p := &models.Project{
		Title:            strings.TrimSpace(in.Title),
		Slug:             slug,
		Description:      in.Description,
		ShortDescription: in.ShortDescription,
		Technologies:     cleanList(in.Technologies),
		Image:            in.Image,
		GithubURL:        in.GithubURL,
		LiveURL:          in.LiveURL,
		Featured:         in.Featured,
		Status:           status,
		Order:            in.Order,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.projects.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update applies the fields present in in. A new title regenerates the slug.
func (s *ProjectService) Update(ctx context.Context, id string, in dto.UpdateProjectDTO) (*models.Project, error) {
	p, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil && strings.TrimSpace(*in.Title) != p.Title {
		slug, err := slugFor(*in.Title)
		if err != nil {
			return nil, err
		}
		p.Title = strings.TrimSpace(*in.Title)
		p.Slug = slug
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.ShortDescription != nil {
		p.ShortDescription = *in.ShortDescription
	}
	if in.Technologies != nil {
		p.Technologies = cleanList(*in.Technologies)
	}
	if in.Image != nil {
		p.Image = *in.Image
	}
	if in.GithubURL != nil {
		p.GithubURL = *in.GithubURL
	}
	if in.LiveURL != nil {
		p.LiveURL = *in.LiveURL
	}
	if in.Featured != nil {
		p.Featured = *in.Featured
	}
	if in.Status != nil {
		status, err := statusOrDraft(*in.Status)
		if err != nil {
			return nil, err
		}
		p.Status = status
	}
	if in.Order != nil {
		p.Order = *in.Order
	}
	p.UpdatedAt = s.now()

	if err := s.projects.Replace(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	return s.projects.Delete(ctx, id)
}
