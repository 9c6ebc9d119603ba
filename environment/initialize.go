package environment

import (
	"os"

	"dev-discuss/ai"
	"dev-discuss/analytics"
	"dev-discuss/database"
	"dev-discuss/models"

	"github.com/go-redis/redis/v8"
	influxdb2 "github.com/influxdata/influxdb-client-go"
	"go.mongodb.org/mongo-driver/mongo"
)

// Environment is used for dependency-injection (package de-coupling).
// All collection handles are bound here, after the connections are open,
// so no handler can observe a half-initialized model.
type Environment struct {
	Tracker *analytics.Tracker
	AI      *ai.Client

	QuestionModel models.QuestionModel
	SaveModel     models.SaveModel
	UserModel     models.UserModel
	BlogModel     models.BlogModel
	EventModel    models.EventModel

	ProblemModel          models.ExerciseModel
	ShortQuestionModel    models.ExerciseModel
	ProblemProgress       models.ProgressModel
	ShortQuestionProgress models.ProgressModel
}

// newEnv operates as the constructor to initialize the collection references (private)
func newEnv(mongoClient *mongo.Client, redisClient *redis.Client, influxClient *influxdb2.Client, aiClient *ai.Client) *Environment {
	env := &Environment{}

	db := mongoClient.Database(os.Getenv("DB_NAME"))

	// prepare analytics gathering (profile visits)
	// always create the object so no further checking is needed in the models
	env.Tracker = new(analytics.Tracker)
	env.Tracker.SetConnections(influxClient, redisClient)

	env.AI = aiClient

	env.UserModel.Collection = db.Collection("users")

	env.QuestionModel.Collection = db.Collection("questions")
	// inject the user model's point function so question operations can
	// award points without knowing the users collection
	env.QuestionModel.AwardPoints = env.UserModel.AwardPoints

	env.SaveModel.Collection = db.Collection("savedQuestions")
	env.BlogModel.Collection = db.Collection("blogs")
	env.EventModel.Collection = db.Collection("events")

	env.ProblemModel.Collection = db.Collection("problems")
	env.ShortQuestionModel.Collection = db.Collection("shortQuestions")
	env.ProblemProgress.Collection = db.Collection("problemProgress")
	env.ShortQuestionProgress.Collection = db.Collection("shortQuestionProgress")

	return env
}

// Env is the singleton registry
var Env *Environment

// Initialize injects the open connections into the models
// (do not confuse with package init)
func Initialize(aiClient *ai.Client) {
	Env = newEnv(database.GetConnection(), database.GetRedisConnection(), database.GetInfluxConnection(), aiClient)
}
