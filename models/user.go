package models

import (
	"context"
	"dev-discuss/apperror"
	"dev-discuss/helpers"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// point categories (field names inside pointsBreakdown)
const (
	PointCategoryComments  = "comments"
	PointCategoryLikes     = "likes"
	PointCategoryLogin     = "login"
	PointCategoryQuestions = "questions"
)

// fixed point deltas per action
const (
	PointsPerComment  int32 = 2
	PointsPerLike     int32 = 1
	PointsPerLogin    int32 = 1
	PointsPerQuestion int32 = 3
)

// PointsBreakdown splits the total by the action that earned it.
// The total in User.Points should equal the sum of these fields; both are
// written by the same $inc, so the invariant holds per award.
type PointsBreakdown struct {
	Comments  int32 `json:"comments" bson:"comments"`
	Likes     int32 `json:"likes" bson:"likes"`
	Login     int32 `json:"login" bson:"login"`
	Questions int32 `json:"questions" bson:"questions"`
}

// User is the "interface" used for client communication.
// Email acts as the unique key; the record is created on first write.
type User struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Email           string             `json:"email" bson:"email"`
	Name            string             `json:"name" bson:"name"`
	Points          int32              `json:"points" bson:"points"`
	PointsBreakdown PointsBreakdown    `json:"pointsBreakdown" bson:"pointsBreakdown"`
}

// UserModel provides the logic to the interface and access to the database
type UserModel struct {
	Collection *mongo.Collection
}

// Validate checks given values and sets defaults where applicable (immutable)
func (m UserModel) Validate(user User) (*User, error) {

	cleaned := user
	cleaned.Email = strings.TrimSpace(cleaned.Email)
	cleaned.Name = strings.TrimSpace(cleaned.Name)

	if cleaned.Email == "" {
		return nil, ErrEmailMissing
	}

	return &cleaned, nil
}

// Upsert creates the user on first write and refreshes the display name on
// subsequent ones. Point fields are never touched here.
func (m UserModel) Upsert(user *User) error {

	filter := bson.D{{Key: "email", Value: user.Email}}
	fields := bson.D{
		{Key: "$set", Value: bson.D{{Key: "name", Value: user.Name}}},
		{Key: "$setOnInsert", Value: bson.D{
			{Key: "email", Value: user.Email},
			{Key: "points", Value: int32(0)},
			{Key: "pointsBreakdown", Value: PointsBreakdown{}},
		}},
	}

	opts := options.Update().SetUpsert(true)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := m.Collection.UpdateOne(ctx, filter, fields, opts)
	if err != nil {
		return helpers.WrapError(err, helpers.FuncName())
	}

	return nil
}

// GetByEmail returns one user profile
func (m UserModel) GetByEmail(email string) (*User, error) {

	data := User{}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := m.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&data)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperror.ErrNoData
		}
		return nil, helpers.WrapError(err, helpers.FuncName())
	}

	return &data, nil
}

// GetPointsBreakdown returns the user's points and their breakdown,
// lazily creating a zeroed record on first access
func (m UserModel) GetPointsBreakdown(email string) (*User, error) {

	filter := bson.D{{Key: "email", Value: email}}
	fields := bson.D{
		{Key: "$setOnInsert", Value: bson.D{
			{Key: "email", Value: email},
			{Key: "points", Value: int32(0)},
			{Key: "pointsBreakdown", Value: PointsBreakdown{}},
		}},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	data := User{}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := m.Collection.FindOneAndUpdate(ctx, filter, fields, opts).Decode(&data)
	if err != nil {
		return nil, helpers.WrapError(err, helpers.FuncName())
	}

	return &data, nil
}

// AwardPoints adds delta to both the total and the category breakdown in a
// single document update, lazily initializing the record. Keeping both
// fields in one $inc preserves points == sum(breakdown).
func (m UserModel) AwardPoints(email string, category string, delta int32) error {

	switch category {
	case PointCategoryComments, PointCategoryLikes, PointCategoryLogin, PointCategoryQuestions:
	default:
		return ErrPointCategoryInvalid
	}

	filter := bson.D{{Key: "email", Value: email}}
	fields := bson.D{
		{Key: "$inc", Value: bson.D{
			{Key: "points", Value: delta},
			{Key: "pointsBreakdown." + category, Value: delta},
		}},
		{Key: "$setOnInsert", Value: bson.D{
			{Key: "email", Value: email},
		}},
	}

	opts := options.Update().SetUpsert(true)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := m.Collection.UpdateOne(ctx, filter, fields, opts)
	if err != nil {
		return helpers.WrapError(err, helpers.FuncName())
	}

	return nil
}
