package repositories

import (
	"context"
	"fmt"

	"github.com/neocodez/portfolio/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type ContactRepository struct {
	col *mongo.Collection
}

func NewContactRepository(col *mongo.Collection) *ContactRepository {
	return &ContactRepository{col: col}
}

func (r *ContactRepository) Create(ctx context.Context, m *models.ContactMessage) error {
	if m.ID.IsZero() {
		m.ID = bson.NewObjectID()
	}
	if _, err := r.col.InsertOne(ctx, m); err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	return nil
}

func (r *ContactRepository) MarkDelivered(ctx context.Context, id bson.ObjectID) error {
	if _, err := r.col.UpdateByID(ctx, id, bson.M{"$set": bson.M{"delivered": true}}); err != nil {
		return fmt.Errorf("mark contact message delivered: %w", err)
	}
	return nil
}

// List returns one page of messages, newest first, and the total count.
func (r *ContactRepository) List(ctx context.Context, page, limit int) ([]models.ContactMessage, int64, error) {
	opts := pageOptions(page, limit).SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find contact messages: %w", err)
	}
	msgs, err := decodeAll[models.ContactMessage](ctx, cursor)
	if err != nil {
		return nil, 0, err
	}

	total, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count contact messages: %w", err)
	}
	return msgs, total, nil
}

func (r *ContactRepository) Delete(ctx context.Context, id string) error {
	return deleteByHexID(ctx, r.col, id)
}
