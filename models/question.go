package models

import (
	"context"
	"dev-discuss/apperror"
	"dev-discuss/helpers"
	"log"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Question is the "interface" used for client communication.
// Tag is either a single string or a list of strings; both shapes exist in
// the collection, so the field stays untyped and is normalized by TagValues.
type Question struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Body        string             `json:"body" bson:"body"`
	Tag         interface{}        `json:"tag,omitempty" bson:"tag,omitempty"`
	AuthorName  string             `json:"authorName,omitempty" bson:"authorName,omitempty"`
	AuthorEmail string             `json:"authorEmail,omitempty" bson:"authorEmail,omitempty"`
	Votes       int32              `json:"votes" bson:"votes"`
	Likes       []string           `json:"likes" bson:"likes"`
	Comments    []Comment          `json:"comments" bson:"comments"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`

	// point-award identity, never persisted with the document
	UserEmail string `json:"email,omitempty" bson:"-"`
}

// Comment is always embedded in exactly one Question
type Comment struct {
	Text      string    `json:"text" bson:"text"`
	Author    string    `json:"author" bson:"author"`
	Photo     string    `json:"photo,omitempty" bson:"photo,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// TagCount is one bucket of the tag histogram
type TagCount struct {
	Tag   string `json:"tag"`
	Count int32  `json:"count"`
}

// QuestionModel provides the logic to the interface and access to the database
type QuestionModel struct {
	Collection *mongo.Collection
	// injected from the user model so the controller doesn't need to
	// coordinate the two collections
	AwardPoints func(email string, category string, delta int32) error
}

// award is best-effort: a failed point write never fails the main operation
func (m QuestionModel) award(email string, category string, delta int32) {
	if email == "" || m.AwardPoints == nil {
		return
	}
	if err := m.AwardPoints(email, category, delta); err != nil {
		log.Println(helpers.WrapError(err, helpers.FuncName()))
	}
}

// List returns all questions, newest first
func (m QuestionModel) List() ([]Question, error) {

	sort := bson.D{{Key: "_id", Value: -1}}
	opts := options.Find().SetSort(sort)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := m.Collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, helpers.WrapError(err, helpers.FuncName())
	}

	var questions []Question
	err = cursor.All(ctx, &questions)
	if err != nil {
		return nil, helpers.WrapError(err, helpers.FuncName())
	}

	// check for empty result set (no error raised by find)
	if questions == nil {
		return nil, apperror.ErrNoData
	}

	return questions, nil
}

// Get returns one question by its identifier
func (m QuestionModel) Get(questionID string) (*Question, error) {

	id, err := primitive.ObjectIDFromHex(questionID)
	if err != nil {
		return nil, ErrQuestionIDInvalid
	}

	data := Question{}

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

// Create inserts a new question with initialized system fields.
// The caller-supplied owner email is stripped from the stored document and
// only used to award the creation points.
func (m QuestionModel) Create(question *Question) (string, error) {

	question.ID = primitive.NewObjectID()
	question.Votes = 0
	question.Likes = []string{}
	question.Comments = []Comment{}
	question.CreatedAt = time.Now().UTC()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := m.Collection.InsertOne(ctx, question)
	if err != nil {
		return "", helpers.WrapError(err, helpers.FuncName())
	}

	m.award(question.UserEmail, PointCategoryQuestions, PointsPerQuestion)

	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

// ListByTag returns questions whose tag (scalar or list) matches the given
// value, case-insensitive
func (m QuestionModel) ListByTag(tag string) ([]Question, error) {

	rx := primitive.Regex{Pattern: "^" + tag + "$", Options: "i"}
	filter := bson.D{
		{Key: "$or", Value: bson.A{
			bson.D{{Key: "tag", Value: rx}},
			bson.D{{Key: "tag", Value: bson.D{{Key: "$elemMatch", Value: bson.D{{Key: "$regex", Value: rx}}}}}},
		}},
	}

	sort := bson.D{{Key: "_id", Value: -1}}
	opts := options.Find().SetSort(sort)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := m.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, helpers.WrapError(err, helpers.FuncName())
	}

	var questions []Question
	err = cursor.All(ctx, &questions)
	if err != nil {
		return nil, helpers.WrapError(err, helpers.FuncName())
	}

	if questions == nil {
		return nil, apperror.ErrNoData
	}

	return questions, nil
}

// ValidateComment checks given values and sets defaults where applicable (immutable)
func (m QuestionModel) ValidateComment(comment Comment) (*Comment, error) {

	cleaned := comment
	cleaned.Text = strings.TrimSpace(cleaned.Text)
	cleaned.Author = strings.TrimSpace(cleaned.Author)

	if cleaned.Text == "" || cleaned.Author == "" {
		return nil, ErrCommentFieldsMissing
	}

	return &cleaned, nil
}

// AddComment appends a comment to the question's embedded list.
// The email identifies the commenting user for the point award.
func (m QuestionModel) AddComment(questionID string, comment *Comment, email string) error {

	id, err := primitive.ObjectIDFromHex(questionID)
	if err != nil {
		return ErrQuestionIDInvalid
	}

	comment.CreatedAt = time.Now().UTC()

	filter := bson.D{{Key: "_id", Value: id}}
	fields := bson.D{
		{Key: "$push", Value: bson.D{{Key: "comments", Value: comment}}},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := m.Collection.UpdateOne(ctx, filter, fields)
	if err != nil {
		return helpers.WrapError(err, helpers.FuncName())
	}

	if result.MatchedCount == 0 {
		return apperror.ErrNoData // document might have been deleted
	}

	m.award(email, PointCategoryComments, PointsPerComment)

	return nil
}

// ToggleLike flips the membership of email in the question's likes set.
// The point is awarded only on the not-liked -> liked transition, so a
// like/unlike round trip grants no net points. Both branches are single
// conditional updates, so two concurrent toggles cannot double-insert.
func (m QuestionModel) ToggleLike(questionID string, email string) (bool, error) {

	id, err := primitive.ObjectIDFromHex(questionID)
	if err != nil {
		return false, ErrQuestionIDInvalid
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// try the like first: matches only when the user is not in the set yet
	filter := bson.D{
		{Key: "_id", Value: id},
		{Key: "likes", Value: bson.D{{Key: "$ne", Value: email}}},
	}
	fields := bson.D{
		{Key: "$addToSet", Value: bson.D{{Key: "likes", Value: email}}},
	}

	result, err := m.Collection.UpdateOne(ctx, filter, fields)
	if err != nil {
		return false, helpers.WrapError(err, helpers.FuncName())
	}

	if result.MatchedCount == 1 {
		m.award(email, PointCategoryLikes, PointsPerLike)
		return true, nil
	}

	// already liked (or the question is gone) - try the unlike
	filter = bson.D{
		{Key: "_id", Value: id},
		{Key: "likes", Value: email},
	}
	fields = bson.D{
		{Key: "$pull", Value: bson.D{{Key: "likes", Value: email}}},
	}

	result, err = m.Collection.UpdateOne(ctx, filter, fields)
	if err != nil {
		return false, helpers.WrapError(err, helpers.FuncName())
	}

	if result.MatchedCount == 0 {
		return false, apperror.ErrNoData // neither branch matched: no such question
	}

	return false, nil
}

// DeleteByOwner removes a question, but only when the given email owns it
func (m QuestionModel) DeleteByOwner(questionID string, email string) error {

	id, err := primitive.ObjectIDFromHex(questionID)
	if err != nil {
		return ErrQuestionIDInvalid
	}

	filter := bson.D{
		{Key: "_id", Value: id},
		{Key: "authorEmail", Value: email},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := m.Collection.DeleteOne(ctx, filter)
	if err != nil {
		return helpers.WrapError(err, helpers.FuncName())
	}

	if result.DeletedCount == 0 {
		return apperror.ErrNoData
	}

	return nil
}

// TagCounts scans all questions and produces counts per distinct tag value.
// A scalar tag counts 1, a list tag counts each element.
func (m QuestionModel) TagCounts() ([]TagCount, error) {

	fields := bson.D{{Key: "tag", Value: 1}}
	opts := options.Find().SetProjection(fields)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := m.Collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, helpers.WrapError(err, helpers.FuncName())
	}

	var questions []Question
	err = cursor.All(ctx, &questions)
	if err != nil {
		return nil, helpers.WrapError(err, helpers.FuncName())
	}

	tags := make([]interface{}, len(questions))
	for i, q := range questions {
		tags[i] = q.Tag
	}

	return CountTags(tags), nil
}

// TagValues normalizes a decoded tag field into a list of strings
func TagValues(tag interface{}) []string {
	switch v := tag.(type) {
	case string:
		return []string{v}
	case []string:
		return v
	case primitive.A:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// CountTags builds the unordered histogram over a list of raw tag fields
func CountTags(tags []interface{}) []TagCount {

	counts := make(map[string]int32)
	for _, t := range tags {
		for _, v := range TagValues(t) {
			counts[v]++
		}
	}

	histogram := make([]TagCount, 0, len(counts))
	for tag, count := range counts {
		histogram = append(histogram, TagCount{Tag: tag, Count: count})
	}

	return histogram
}
