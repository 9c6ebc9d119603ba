package models

import (
	"errors"
	"testing"

	"dev-discuss/apperror"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func progressValue(email string, index int32, score int32, solved bson.A) bson.E {
	return bson.E{Key: "value", Value: bson.D{
		{Key: "email", Value: email},
		{Key: "index", Value: index},
		{Key: "score", Value: score},
		{Key: "solved", Value: solved},
	}}
}

func TestRecordSolvedOncePerItem(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("first submission counts", func(mt *mtest.T) {
		model := ProgressModel{Collection: mt.Coll}

		mt.AddMockResponses(
			mtest.CreateSuccessResponse(progressValue("ann@example.com", 0, 0, bson.A{})),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
		)

		if err := model.RecordSolved("ann@example.com", "two-sum", 80); err != nil {
			mt.Fatalf("record solved failed: %v", err)
		}
	})

	mt.Run("resubmission matches nothing", func(mt *mtest.T) {
		model := ProgressModel{Collection: mt.Coll}

		// the item is in the solved set, so the conditional update finds no
		// document to change
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(progressValue("ann@example.com", 1, 80, bson.A{"two-sum"})),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}),
		)

		err := model.RecordSolved("ann@example.com", "two-sum", 80)
		if !errors.Is(err, apperror.ErrAlreadySolved) {
			mt.Fatalf("err = %v, want ErrAlreadySolved", err)
		}
	})
}

func TestGetOrCreateZeroDefaults(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("fresh record", func(mt *mtest.T) {
		model := ProgressModel{Collection: mt.Coll}

		mt.AddMockResponses(
			mtest.CreateSuccessResponse(progressValue("ann@example.com", 0, 0, bson.A{})))

		record, err := model.GetOrCreate("ann@example.com")
		if err != nil {
			mt.Fatalf("get or create failed: %v", err)
		}
		if record.Index != 0 || record.Score != 0 || len(record.Solved) != 0 {
			mt.Fatalf("record = %+v, want zero defaults", record)
		}
	})
}
