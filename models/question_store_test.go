package models

import (
	"errors"
	"fmt"
	"testing"

	"dev-discuss/apperror"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestToggleLikeTransitions(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	id := primitive.NewObjectID().Hex()

	mt.Run("first like awards one point", func(mt *mtest.T) {
		var awards []string
		model := QuestionModel{
			Collection: mt.Coll,
			AwardPoints: func(email string, category string, delta int32) error {
				awards = append(awards, fmt.Sprintf("%s/%s/%d", email, category, delta))
				return nil
			},
		}

		// the $ne guard matched: user was not in the set yet
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))

		liked, err := model.ToggleLike(id, "ann@example.com")
		if err != nil {
			mt.Fatalf("toggle failed: %v", err)
		}
		if !liked {
			mt.Fatal("liked = false, want true")
		}
		want := fmt.Sprintf("ann@example.com/%s/%d", PointCategoryLikes, PointsPerLike)
		if len(awards) != 1 || awards[0] != want {
			mt.Fatalf("awards = %v, want exactly [%s]", awards, want)
		}
	})

	mt.Run("unlike grants nothing", func(mt *mtest.T) {
		awards := 0
		model := QuestionModel{
			Collection: mt.Coll,
			AwardPoints: func(email string, category string, delta int32) error {
				awards++
				return nil
			},
		}

		// like branch finds nothing, the pull branch matches
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))

		liked, err := model.ToggleLike(id, "ann@example.com")
		if err != nil {
			mt.Fatalf("toggle failed: %v", err)
		}
		if liked {
			mt.Fatal("liked = true, want false")
		}
		if awards != 0 {
			mt.Fatalf("awards = %d, want 0 on the unlike transition", awards)
		}
	})

	mt.Run("unknown question", func(mt *mtest.T) {
		model := QuestionModel{Collection: mt.Coll}

		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))

		_, err := model.ToggleLike(id, "ann@example.com")
		if !errors.Is(err, apperror.ErrNoData) {
			mt.Fatalf("err = %v, want ErrNoData", err)
		}
	})
}
