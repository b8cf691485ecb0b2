package repositories

import (
	"context"
	"fmt"

	"github.com/neocodez/portfolio/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type GuideFilter struct {
	Status    models.PublishStatus
	ProjectID string
	Page      int
	Limit     int
}

type GuideRepository struct {
	col *mongo.Collection
}

func NewGuideRepository(col *mongo.Collection) *GuideRepository {
	return &GuideRepository{col: col}
}

func (r *GuideRepository) List(ctx context.Context, f GuideFilter) ([]models.Guide, int64, error) {
	filter := bson.M{}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.ProjectID != "" {
		oid, err := bson.ObjectIDFromHex(f.ProjectID)
		if err != nil {
			return []models.Guide{}, 0, nil
		}
		filter["project"] = oid
	}

	opts := pageOptions(f.Page, f.Limit).SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find guides: %w", err)
	}
	guides, err := decodeAll[models.Guide](ctx, cursor)
	if err != nil {
		return nil, 0, err
	}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count guides: %w", err)
	}
	return guides, total, nil
}

func (r *GuideRepository) ViewBySlug(ctx context.Context, slug string, publishedOnly bool) (*models.Guide, error) {
	return incrementViews[models.Guide](ctx, r.col, slugFilter(slug, publishedOnly))
}

func (r *GuideRepository) FindByID(ctx context.Context, id string) (*models.Guide, error) {
	return findByHexID[models.Guide](ctx, r.col, id)
}

func (r *GuideRepository) Create(ctx context.Context, g *models.Guide) error {
	if g.ID.IsZero() {
		g.ID = bson.NewObjectID()
	}
	return insertSlugged(ctx, r.col, g)
}

func (r *GuideRepository) Replace(ctx context.Context, g *models.Guide) error {
	return replaceSlugged(ctx, r.col, g.ID, g)
}

func (r *GuideRepository) Delete(ctx context.Context, id string) error {
	return deleteByHexID(ctx, r.col, id)
}
