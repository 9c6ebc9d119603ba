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

// Blog is the "interface" used for client communication
type Blog struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Tags        []string           `json:"tags" bson:"tags"`
	Author      string             `json:"author,omitempty" bson:"author,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

// BlogModel provides the logic to the interface and access to the database
type BlogModel struct {
	Collection *mongo.Collection
}

// Create adds a new blog post
func (m BlogModel) Create(blog *Blog) (string, error) {

	blog.ID = primitive.NewObjectID()
	blog.CreatedAt = time.Now().UTC()
	if blog.Tags == nil {
		blog.Tags = []string{}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := m.Collection.InsertOne(ctx, blog)
	if err != nil {
		return "", helpers.WrapError(err, helpers.FuncName())
	}

	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

// List returns all blog posts, newest first
func (m BlogModel) List() ([]Blog, error) {

	sort := bson.D{{Key: "_id", Value: -1}}
	opts := options.Find().SetSort(sort)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := m.Collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, helpers.WrapError(err, helpers.FuncName())
	}

	var blogs []Blog
	err = cursor.All(ctx, &blogs)
	if err != nil {
		return nil, helpers.WrapError(err, helpers.FuncName())
	}

	if blogs == nil {
		return nil, apperror.ErrNoData
	}

	return blogs, nil
}

// Get returns one blog post
func (m BlogModel) Get(blogID string) (*Blog, error) {

	id, err := primitive.ObjectIDFromHex(blogID)
	if err != nil {
		return nil, ErrBlogIDInvalid
	}

	data := Blog{}

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

// SearchByTag returns blog posts whose tag list contains the given value,
// case-insensitive (used by the error-diagnosis flow)
func (m BlogModel) SearchByTag(tag string) ([]Blog, error) {

	rx := primitive.Regex{Pattern: "^" + tag + "$", Options: "i"}
	filter := bson.D{
		{Key: "tags", Value: bson.D{{Key: "$elemMatch", Value: bson.D{{Key: "$regex", Value: rx}}}}},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := m.Collection.Find(ctx, filter)
	if err != nil {
		return nil, helpers.WrapError(err, helpers.FuncName())
	}

	var blogs []Blog
	err = cursor.All(ctx, &blogs)
	if err != nil {
		return nil, helpers.WrapError(err, helpers.FuncName())
	}

	if blogs == nil {
		return nil, apperror.ErrNoData
	}

	return blogs, nil
}
