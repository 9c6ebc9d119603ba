package models

import (
	"context"
	"dev-discuss/apperror"
	"dev-discuss/helpers"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Progress is the per-user running tally of completed gamified items.
// Solved is append-only; an item identifier appears at most once.
type Progress struct {
	ID     primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Email  string             `json:"email" bson:"email"`
	Index  int32              `json:"index" bson:"index"`
	Score  int32              `json:"score" bson:"score"`
	Solved []string           `json:"solved" bson:"solved"`
}

// ProgressModel provides access to one progress collection; the environment
// instantiates it once per exercise flow
type ProgressModel struct {
	Collection *mongo.Collection
}

// GetOrCreate returns the user's progress record, lazily creating it with
// zero defaults on first access
func (m ProgressModel) GetOrCreate(email string) (*Progress, error) {

	filter := bson.D{{Key: "email", Value: email}}
	fields := bson.D{
		{Key: "$setOnInsert", Value: bson.D{
			{Key: "email", Value: email},
			{Key: "index", Value: int32(0)},
			{Key: "score", Value: int32(0)},
			{Key: "solved", Value: []string{}},
		}},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	data := Progress{}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := m.Collection.FindOneAndUpdate(ctx, filter, fields, opts).Decode(&data)
	if err != nil {
		return nil, helpers.WrapError(err, helpers.FuncName())
	}

	return &data, nil
}

// HasSolved reports whether the item has already been credited
func (p *Progress) HasSolved(itemID string) bool {
	for _, solved := range p.Solved {
		if solved == itemID {
			return true
		}
	}
	return false
}

// RecordSolved appends the item to the solved list and adds the score.
// Membership check and update are one conditional document update, so two
// concurrent submissions for the same user and item cannot both count.
func (m ProgressModel) RecordSolved(email string, itemID string, score int32) error {

	// make sure the record exists; the conditional update below must not
	// upsert, or a fresh record would bypass the membership check
	if _, err := m.GetOrCreate(email); err != nil {
		return err
	}

	filter := bson.D{
		{Key: "email", Value: email},
		{Key: "solved", Value: bson.D{{Key: "$ne", Value: itemID}}},
	}
	fields := bson.D{
		{Key: "$push", Value: bson.D{{Key: "solved", Value: itemID}}},
		{Key: "$inc", Value: bson.D{
			{Key: "index", Value: int32(1)},
			{Key: "score", Value: score},
		}},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := m.Collection.UpdateOne(ctx, filter, fields)
	if err != nil {
		return helpers.WrapError(err, helpers.FuncName())
	}

	if result.MatchedCount == 0 {
		return apperror.ErrAlreadySolved
	}

	return nil
}

var scorePattern = regexp.MustCompile(`-?\d+`)

// ParseScore extracts the integer grade from a model reply. Replies are
// expected to be a bare number but often carry prose around it; anything
// without a number scores 0 rather than poisoning the running total.
func ParseScore(text string) int32 {

	trimmed := strings.TrimSpace(text)
	if n, err := strconv.Atoi(trimmed); err == nil {
		return clampScore(n)
	}

	match := scorePattern.FindString(trimmed)
	if match == "" {
		return 0
	}

	n, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}

	return clampScore(n)
}

func clampScore(n int) int32 {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return int32(n)
}
