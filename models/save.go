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

// SavedQuestion is a bookmark from a user email to a question
type SavedQuestion struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Email      string             `json:"email" bson:"email"`
	QuestionID string             `json:"questionId" bson:"questionId"`
	Title      string             `json:"title,omitempty" bson:"title,omitempty"`
	Tag        interface{}        `json:"tag,omitempty" bson:"tag,omitempty"`
	SavedAt    time.Time          `json:"savedAt" bson:"savedAt"`
}

// SaveModel provides the logic to the interface and access to the database
type SaveModel struct {
	Collection *mongo.Collection
}

// Validate checks given values and sets defaults where applicable (immutable)
func (m SaveModel) Validate(save SavedQuestion) (*SavedQuestion, error) {

	cleaned := save
	cleaned.Email = strings.TrimSpace(cleaned.Email)

	if cleaned.Email == "" {
		return nil, ErrEmailMissing
	}

	return &cleaned, nil
}

// Create adds a new bookmark
func (m SaveModel) Create(save *SavedQuestion) (string, error) {

	save.ID = primitive.NewObjectID()
	save.SavedAt = time.Now().UTC()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := m.Collection.InsertOne(ctx, save)
	if err != nil {
		return "", helpers.WrapError(err, helpers.FuncName())
	}

	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

// ListByEmail returns all bookmarks of one user, newest first
func (m SaveModel) ListByEmail(email string) ([]SavedQuestion, error) {

	sort := bson.D{{Key: "_id", Value: -1}}
	opts := options.Find().SetSort(sort)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := m.Collection.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, helpers.WrapError(err, helpers.FuncName())
	}

	var saves []SavedQuestion
	err = cursor.All(ctx, &saves)
	if err != nil {
		return nil, helpers.WrapError(err, helpers.FuncName())
	}

	if saves == nil {
		return nil, apperror.ErrNoData
	}

	return saves, nil
}

// Delete removes one bookmark by its identifier
func (m SaveModel) Delete(saveID string) error {

	id, err := primitive.ObjectIDFromHex(saveID)
	if err != nil {
		return ErrSaveIDInvalid
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := m.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return helpers.WrapError(err, helpers.FuncName())
	}

	if result.DeletedCount == 0 {
		return apperror.ErrNoData
	}

	return nil
}
