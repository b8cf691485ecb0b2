package repositories

import (
	"context"
	"fmt"

	"github.com/neocodez/portfolio/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type BlogFilter struct {
	Tag    string
	Status models.PublishStatus
	Page   int
	Limit  int
}

type BlogRepository struct {
	col *mongo.Collection
}

func NewBlogRepository(col *mongo.Collection) *BlogRepository {
	return &BlogRepository{col: col}
}

// List returns one page of posts, newest first, and the total match count.
func (r *BlogRepository) List(ctx context.Context, f BlogFilter) ([]models.Blog, int64, error) {
	filter := bson.M{}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.Tag != "" {
		filter["tags"] = f.Tag
	}

	opts := pageOptions(f.Page, f.Limit).SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find blogs: %w", err)
	}
	blogs, err := decodeAll[models.Blog](ctx, cursor)
	if err != nil {
		return nil, 0, err
	}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count blogs: %w", err)
	}
	return blogs, total, nil
}

// ViewBySlug returns the post and counts the read.
func (r *BlogRepository) ViewBySlug(ctx context.Context, slug string, publishedOnly bool) (*models.Blog, error) {
	return incrementViews[models.Blog](ctx, r.col, slugFilter(slug, publishedOnly))
}

func (r *BlogRepository) FindByID(ctx context.Context, id string) (*models.Blog, error) {
	return findByHexID[models.Blog](ctx, r.col, id)
}

func (r *BlogRepository) Create(ctx context.Context, b *models.Blog) error {
	if b.ID.IsZero() {
		b.ID = bson.NewObjectID()
	}
	return insertSlugged(ctx, r.col, b)
}

func (r *BlogRepository) Replace(ctx context.Context, b *models.Blog) error {
	return replaceSlugged(ctx, r.col, b.ID, b)
}

func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	return deleteByHexID(ctx, r.col, id)
}
