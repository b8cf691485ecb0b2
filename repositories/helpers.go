package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/neocodez/portfolio/models"
	"github.com/neocodez/portfolio/utils"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func decodeAll[T any](ctx context.Context, cursor *mongo.Cursor) ([]T, error) {
	defer cursor.Close(ctx)

	items := make([]T, 0)
	for cursor.Next(ctx) {
		var item T
		if err := cursor.Decode(&item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func findOneDoc[T any](ctx context.Context, col *mongo.Collection, filter bson.M) (*T, error) {
	var doc T
	if err := col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("find %s: %w", col.Name(), err)
	}
	return &doc, nil
}

func findByHexID[T any](ctx context.Context, col *mongo.Collection, id string) (*T, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrDocumentNotFound
	}
	return findOneDoc[T](ctx, col, bson.M{"_id": oid})
}

// slugFilter matches slug, restricted to published documents when
// publishedOnly is set.
func slugFilter(slug string, publishedOnly bool) bson.M {
	filter := bson.M{"slug": slug}
	if publishedOnly {
		filter["status"] = models.StatusPublished
	}
	return filter
}

// incrementViews bumps the view counter of the matching document and
// returns the updated document.
func incrementViews[T any](ctx context.Context, col *mongo.Collection, filter bson.M) (*T, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc T
	err := col.FindOneAndUpdate(ctx,
		filter,
		bson.M{"$inc": bson.M{"views": 1}},
		opts,
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("increment views on %s: %w", col.Name(), err)
	}
	return &doc, nil
}

func insertSlugged(ctx context.Context, col *mongo.Collection, doc any) error {
	if _, err := col.InsertOne(ctx, doc); err != nil {
		if utils.IsDuplicateKey(err) {
			return ErrDuplicateSlug
		}
		return fmt.Errorf("insert into %s: %w", col.Name(), err)
	}
	return nil
}

func replaceSlugged(ctx context.Context, col *mongo.Collection, id bson.ObjectID, doc any) error {
	res, err := col.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		if utils.IsDuplicateKey(err) {
			return ErrDuplicateSlug
		}
		return fmt.Errorf("replace in %s: %w", col.Name(), err)
	}
	if res.MatchedCount == 0 {
		return ErrDocumentNotFound
	}
	return nil
}

func deleteByHexID(ctx context.Context, col *mongo.Collection, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrDocumentNotFound
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete from %s: %w", col.Name(), err)
	}
	if res.DeletedCount == 0 {
		return ErrDocumentNotFound
	}
	return nil
}

func pageOptions(page, limit int) *options.FindOptionsBuilder {
	if page < 1 {
		page = 1
	}
	return options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))
}
