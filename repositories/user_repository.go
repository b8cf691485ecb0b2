package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/neocodez/portfolio/models"
	"github.com/neocodez/portfolio/utils"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// UserRepository is the credential store. Raw passwords enter through
// CreateUser and UpdatePassword and are hashed before they reach Mongo.
type UserRepository struct {
	col *mongo.Collection
	now func() time.Time
}

func NewUserRepository(col *mongo.Collection) *UserRepository {
	return &UserRepository{col: col, now: func() time.Time { return time.Now().UTC() }}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	if err := r.col.FindOne(ctx, filter).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) CreateUser(ctx context.Context, name, email, rawPassword string, role models.Role) (*models.User, error) {
	hash, err := utils.HashPassword(rawPassword)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := r.now()
	user := models.User{
		ID:           bson.NewObjectID(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := r.col.InsertOne(ctx, user); err != nil {
		if utils.IsDuplicateKey(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrUserNotFound
	}
	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// SetResetCode overwrites any code already stored for the user.
func (r *UserRepository) SetResetCode(ctx context.Context, id, code string, expiresAt time.Time) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrUserNotFound
	}

	res, err := r.col.UpdateByID(ctx, oid, bson.M{
		"$set": bson.M{
			"otp":        code,
			"otpExpires": expiresAt.UTC(),
			"updatedAt":  r.now(),
		},
	})
	if err != nil {
		return fmt.Errorf("set reset code: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// ConsumeResetCode clears the code only if it is still the stored one and
// has not expired at now. It reports whether this call consumed it, so two
// concurrent verifications of the same code cannot both succeed.
func (r *UserRepository) ConsumeResetCode(ctx context.Context, id, code string, now time.Time) (bool, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return false, ErrUserNotFound
	}

	return r.unsetCode(ctx, consumeCodeFilter(oid, code, now))
}

// RevokeResetCode clears the code only if it is still the stored one. A newer
// code issued in the meantime is left alone.
func (r *UserRepository) RevokeResetCode(ctx context.Context, id, code string) (bool, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return false, ErrUserNotFound
	}
	return r.unsetCode(ctx, revokeCodeFilter(oid, code))
}

// ClearResetCode is idempotent.
func (r *UserRepository) ClearResetCode(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrUserNotFound
	}
	_, err = r.unsetCode(ctx, bson.M{"_id": oid})
	return err
}

func (r *UserRepository) unsetCode(ctx context.Context, filter bson.M) (bool, error) {
	res, err := r.col.UpdateOne(ctx, filter, unsetCodeUpdate(r.now()))
	if err != nil {
		return false, fmt.Errorf("clear reset code: %w", err)
	}
	return res.ModifiedCount == 1, nil
}

// consumeCodeFilter matches only while code is the stored one and its expiry
// lies strictly after now.
func consumeCodeFilter(oid bson.ObjectID, code string, now time.Time) bson.M {
	return bson.M{
		"_id":        oid,
		"otp":        code,
		"otpExpires": bson.M{"$gt": now.UTC()},
	}
}

func revokeCodeFilter(oid bson.ObjectID, code string) bson.M {
	return bson.M{"_id": oid, "otp": code}
}

func expiredCodesFilter(now time.Time) bson.M {
	return bson.M{"otpExpires": bson.M{"$lte": now.UTC()}}
}

func unsetCodeUpdate(now time.Time) bson.M {
	return bson.M{
		"$unset": bson.M{"otp": "", "otpExpires": ""},
		"$set":   bson.M{"updatedAt": now},
	}
}

// UpdatePassword re-hashes and replaces the password. Role and email are untouched.
func (r *UserRepository) UpdatePassword(ctx context.Context, id, rawPassword string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrUserNotFound
	}

	hash, err := utils.HashPassword(rawPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	res, err := r.col.UpdateByID(ctx, oid, bson.M{
		"$set": bson.M{
			"passwordHash": hash,
			"updatedAt":    r.now(),
		},
	})
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// ClearExpiredResetCodes removes every code whose expiry is at or before now.
func (r *UserRepository) ClearExpiredResetCodes(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.col.UpdateMany(ctx, expiredCodesFilter(now), unsetCodeUpdate(r.now()))
	if err != nil {
		return 0, fmt.Errorf("clear expired reset codes: %w", err)
	}
	return res.ModifiedCount, nil
}
