package utils

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/neocodez/portfolio/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

var ErrMissingAdminCredentials = errors.New("missing admin email or password")

// SeedAdminUser inserts an admin account unless one with the same email
// already exists. An existing account is never modified. It reports whether
// a new document was inserted.
func SeedAdminUser(ctx context.Context, usersCol *mongo.Collection, email, name, password string) (bool, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return false, ErrMissingAdminCredentials
	}

	hash, err := HashPassword(password)
	if err != nil {
		return false, fmt.Errorf("hash admin password: %w", err)
	}

	now := time.Now().UTC()

	// Only insert if it doesn't exist
	filter := bson.M{"email": email}
	update := bson.M{
		"$setOnInsert": bson.M{
			"name":         name,
			"email":        email,
			"passwordHash": hash,
			"role":         models.RoleAdmin,
			"createdAt":    now,
			"updatedAt":    now,
		},
	}

	opts := options.UpdateOne().SetUpsert(true)

	res, err := usersCol.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return false, fmt.Errorf("seed admin upsert failed: %w", err)
	}

	return res.UpsertedCount == 1, nil
}
