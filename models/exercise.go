package models

import (
	"context"
	"dev-discuss/apperror"
	"dev-discuss/helpers"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Exercise is a static gamified item: a coding problem or a free-form
// short question. Both collections share the same shape.
type Exercise struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Prompt      string             `json:"prompt,omitempty" bson:"prompt,omitempty"`
	Difficulty  string             `json:"difficulty,omitempty" bson:"difficulty,omitempty"`
}

// ExerciseModel provides access to one exercise collection; the environment
// instantiates it once for problems and once for short questions
type ExerciseModel struct {
	Collection *mongo.Collection
}

// List returns all exercises in insertion order
func (m ExerciseModel) List() ([]Exercise, error) {

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := m.Collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, helpers.WrapError(err, helpers.FuncName())
	}

	var exercises []Exercise
	err = cursor.All(ctx, &exercises)
	if err != nil {
		return nil, helpers.WrapError(err, helpers.FuncName())
	}

	if exercises == nil {
		return nil, apperror.ErrNoData
	}

	return exercises, nil
}

// Get returns one exercise
func (m ExerciseModel) Get(exerciseID string) (*Exercise, error) {

	id, err := primitive.ObjectIDFromHex(exerciseID)
	if err != nil {
		return nil, apperror.ErrNoData
	}

	data := Exercise{}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = m.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&data)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperror.ErrNoData
		}
		return nil, helpers.WrapError(err, helpers.FuncName())
	}

	return &data, nil
}
