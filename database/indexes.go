package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type collectionIndexes struct {
	collection string
	models     []mongo.IndexModel
}

func uniqueOn(field string) mongo.IndexModel {
	return mongo.IndexModel{
		Keys:    bson.D{{Key: field, Value: 1}},
		Options: options.Index().SetUnique(true),
	}
}

func indexPlan() []collectionIndexes {
	return []collectionIndexes{
		{UsersCollection, []mongo.IndexModel{
			uniqueOn("email"),
			{
				Keys:    bson.D{{Key: "otpExpires", Value: 1}},
				Options: options.Index().SetSparse(true),
			},
		}},
		{ProjectsCollection, []mongo.IndexModel{
			uniqueOn("slug"),
			{Keys: bson.D{{Key: "order", Value: 1}, {Key: "createdAt", Value: -1}}},
		}},
		{BlogsCollection, []mongo.IndexModel{
			uniqueOn("slug"),
			{Keys: bson.D{{Key: "tags", Value: 1}}},
		}},
		{GuidesCollection, []mongo.IndexModel{
			uniqueOn("slug"),
			{Keys: bson.D{{Key: "project", Value: 1}}},
		}},
		{ContactsCollection, []mongo.IndexModel{
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		}},
	}
}

// EnsureIndexes creates the indexes the repositories rely on. Email and slug
// uniqueness is enforced here, not in application code.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for _, ci := range indexPlan() {
		if _, err := db.Collection(ci.collection).Indexes().CreateMany(ctx, ci.models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", ci.collection, err)
		}
	}
	return nil
}
