package models

import (
	"context"
	"dev-discuss/apperror"
	"dev-discuss/helpers"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EventModel stores freeform event records; the collection accepts whatever
// shape the client writes, so documents are handled as raw maps
type EventModel struct {
	Collection *mongo.Collection
}

// Create inserts the raw document and returns the generated identifier
func (m EventModel) Create(event bson.M) (string, error) {

	delete(event, "_id") // identifier is always server-generated
	event["createdAt"] = time.Now().UTC()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := m.Collection.InsertOne(ctx, event)
	if err != nil {
		return "", helpers.WrapError(err, helpers.FuncName())
	}

	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

// List returns all events, newest first
func (m EventModel) List() ([]bson.M, error) {

	sort := bson.D{{Key: "_id", Value: -1}}
	opts := options.Find().SetSort(sort)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := m.Collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, helpers.WrapError(err, helpers.FuncName())
	}

	var events []bson.M
	err = cursor.All(ctx, &events)
	if err != nil {
		return nil, helpers.WrapError(err, helpers.FuncName())
	}

	if events == nil {
		return nil, apperror.ErrNoData
	}

	return events, nil
}

// Get returns one event
func (m EventModel) Get(eventID string) (bson.M, error) {

	id, err := primitive.ObjectIDFromHex(eventID)
	if err != nil {
		return nil, ErrEventIDInvalid
	}

	data := bson.M{}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = m.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&data)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperror.ErrNoData
		}
		return nil, helpers.WrapError(err, helpers.FuncName())
	}

	return data, nil
}
