package repositories

import (
	"context"
	"fmt"

	"github.com/neocodez/portfolio/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type ProjectFilter struct {
	Featured   *bool
	Status     models.PublishStatus
	Technology string
}

type ProjectRepository struct {
	col *mongo.Collection
}

func NewProjectRepository(col *mongo.Collection) *ProjectRepository {
	return &ProjectRepository{col: col}
}

// List returns matching projects ordered by order asc, newest first within the same order.
func (r *ProjectRepository) List(ctx context.Context, f ProjectFilter) ([]models.Project, error) {
	filter := bson.M{}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.Featured != nil {
		filter["featured"] = *f.Featured
	}
	if f.Technology != "" {
		filter["technologies"] = f.Technology
	}

	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "createdAt", Value: -1}})
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find projects: %w", err)
	}
	return decodeAll[models.Project](ctx, cursor)
}

func (r *ProjectRepository) FindBySlug(ctx context.Context, slug string, publishedOnly bool) (*models.Project, error) {
	return findOneDoc[models.Project](ctx, r.col, slugFilter(slug, publishedOnly))
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*models.Project, error) {
	return findByHexID[models.Project](ctx, r.col, id)
}

func (r *ProjectRepository) Create(ctx context.Context, p *models.Project) error {
	if p.ID.IsZero() {
		p.ID = bson.NewObjectID()
	}
	return insertSlugged(ctx, r.col, p)
}

func (r *ProjectRepository) Replace(ctx context.Context, p *models.Project) error {
	return replaceSlugged(ctx, r.col, p.ID, p)
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	return deleteByHexID(ctx, r.col, id)
}
