package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/neocodez/portfolio/dto"
	"github.com/neocodez/portfolio/models"
	"github.com/neocodez/portfolio/repositories"
)

type GuideStore interface {
	List(ctx context.Context, f repositories.GuideFilter) ([]models.Guide, int64, error)
	ViewBySlug(ctx context.Context, slug string, publishedOnly bool) (*models.Guide, error)
	FindByID(ctx context.Context, id string) (*models.Guide, error)
	Create(ctx context.Context, g *models.Guide) error
	Replace(ctx context.Context, g *models.Guide) error
	Delete(ctx context.Context, id string) error
}

// ProjectLookup checks that a guide points at an existing project.
type ProjectLookup interface {
	FindByID(ctx context.Context, id string) (*models.Project, error)
}

type GuideService struct {
	guides   GuideStore
	projects ProjectLookup
	users    UserLookup
	now      func() time.Time
}

func NewGuideService(guides GuideStore, projects ProjectLookup, users UserLookup) *GuideService {
	return &GuideService{
		guides:   guides,
		projects: projects,
		users:    users,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *GuideService) List(ctx context.Context, f repositories.GuideFilter) ([]models.Guide, int64, error) {
	return s.guides.List(ctx, f)
}

func (s *GuideService) View(ctx context.Context, slug string, includeDrafts bool) (*models.Guide, error) {
	return s.guides.ViewBySlug(ctx, slug, !includeDrafts)
}

func (s *GuideService) resolveProject(ctx context.Context, id string) (*models.Project, error) {
	p, err := s.projects.FindByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, repositories.ErrDocumentNotFound) {
			return nil, newValidationError("project", "project not found")
		}
		return nil, err
	}
	return p, nil
}

func (s *GuideService) Create(ctx context.Context, authorID string, in dto.CreateGuideDTO) (*models.Guide, error) {
	slug, err := slugFor(in.Title)
	if err != nil {
		return nil, err
	}
	status, err := statusOrDraft(in.Status)
	if err != nil {
		return nil, err
	}

	project, err := s.resolveProject(ctx, in.Project)
	if err != nil {
		return nil, err
	}

	author, err := s.users.FindByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	readTime := in.ReadTime
	if readTime <= 0 {
		readTime = models.DefaultGuideReadTime
	}

	now := s.now()
	g := &models.Guide{
		Title:      strings.TrimSpace(in.Title),
		Slug:       slug,
		Content:    in.Content,
		ProjectID:  project.ID,
		AuthorID:   author.ID,
		AuthorName: author.Name,
		Status:     status,
		ReadTime:   readTime,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.guides.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *GuideService) Update(ctx context.Context, id string, in dto.UpdateGuideDTO) (*models.Guide, error) {
	g, err := s.guides.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil && strings.TrimSpace(*in.Title) != g.Title {
		slug, err := slugFor(*in.Title)
		if err != nil {
			return nil, err
		}
		g.Title = strings.TrimSpace(*in.Title)
		g.Slug = slug
	}
	if in.Content != nil {
		g.Content = *in.Content
	}
	if in.Project != nil {
		project, err := s.resolveProject(ctx, *in.Project)
		if err != nil {
			return nil, err
		}
		g.ProjectID = project.ID
	}
	if in.Status != nil {
		status, err := statusOrDraft(*in.Status)
		if err != nil {
			return nil, err
		}
		g.Status = status
	}
	if in.ReadTime != nil && *in.ReadTime > 0 {
		g.ReadTime = *in.ReadTime
	}
	g.UpdatedAt = s.now()

	if err := s.guides.Replace(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *GuideService) Delete(ctx context.Context, id string) error {
	return s.guides.Delete(ctx, id)
}
