package database

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// shared connection (private to members of this package)
var client *mongo.Client

// OpenConnection to the database
func OpenConnection() error {
	var err error

	conStr := fmt.Sprintf("mongodb://%s:%s@%s:%s",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASS"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"))

	// every caller will create its own context
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err = mongo.Connect(ctx, options.Client().ApplyURI(conStr))
	if err != nil {
		return err
	}

	// make sure a connection has actually been made
	return client.Ping(ctx, readpref.Primary())
}

// CloseConnection closes the connection to the DB (when the server is shut down)
func CloseConnection() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return client.Disconnect(ctx)
}

// GetConnection returns a reference to the shared connection
func GetConnection() *mongo.Client {
	return client
}
