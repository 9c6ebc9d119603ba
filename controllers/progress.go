package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"dev-discuss/ai"
	"dev-discuss/apperror"
	"dev-discuss/environment"
	"dev-discuss/models"

	"github.com/gin-gonic/gin"
)

// submission is the shared input shape of both gamified flows
type submission struct {
	Email    string `json:"email"`
	ItemID   string `json:"itemId"`
	Solution string `json:"solution"`
}

func (s *submission) validate() error {
	s.Email = strings.TrimSpace(s.Email)
	s.ItemID = strings.TrimSpace(s.ItemID)
	if s.Email == "" || s.ItemID == "" || strings.TrimSpace(s.Solution) == "" {
		return models.ErrSubmissionFieldsMissing
	}
	return nil
}

// gradingPrompt embeds the task and the submission; the model is asked for
// a bare number so ParseScore stays simple
func gradingPrompt(kind string, exercise *models.Exercise, solution string) string {
	return fmt.Sprintf(
		"You are grading a %s. Task: %s\n%s\nSubmission:\n%s\n"+
			"Reply with a single integer score between 0 and 100 and nothing else.",
		kind, exercise.Title, exercise.Description, solution)
}

// ListProblems returns the coding problems
func ListProblems(c *gin.Context) {
	listExercises(c, environment.Env.ProblemModel)
}

// ListShortQuestions returns the free-form short questions
func ListShortQuestions(c *gin.Context) {
	listExercises(c, environment.Env.ShortQuestionModel)
}

func listExercises(c *gin.Context, model models.ExerciseModel) {

	exercises, err := model.List()
	if err != nil {
		if errors.Is(err, apperror.ErrNoData) {
			c.JSON(http.StatusOK, []models.Exercise{})
			return
		}
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	c.JSON(http.StatusOK, exercises)
}

// SubmitProblem grades a coding-problem submission
func SubmitProblem(c *gin.Context) {
	submitExercise(c, "coding problem", environment.Env.ProblemModel, environment.Env.ProblemProgress)
}

// SubmitShortQuestion grades a short-question submission
func SubmitShortQuestion(c *gin.Context) {
	submitExercise(c, "short question", environment.Env.ShortQuestionModel, environment.Env.ShortQuestionProgress)
}

// submitExercise is the first-come progress flow: one submission per user
// and item, scored by the AI client
func submitExercise(c *gin.Context, kind string, exercises models.ExerciseModel, progress models.ProgressModel) {

	var data submission

	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{"Invalid JSON"})
		return
	}

	if err := data.validate(); err != nil {
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	exercise, err := exercises.Get(data.ItemID)
	if err != nil {
		if errors.Is(err, apperror.ErrNoData) {
			c.JSON(http.StatusNotFound, ErrorResponse{MsgNotFound})
			return
		}
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	// resubmissions are turned away before any grading happens, a repeat
	// must not spend an AI call or seed the response cache
	record, err := progress.GetOrCreate(data.Email)
	if err != nil {
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}
	if record.HasSolved(data.ItemID) {
		c.JSON(http.StatusOK, gin.H{"message": MsgAlreadyFinished})
		return
	}

	// a degraded model grades 0 rather than failing the submission
	ctx := c.Request.Context()
	reply := environment.Env.AI.CompleteWithFallback(
		ctx, gradingPrompt(kind, exercise, data.Solution), "0", ai.GradeTimeout)
	score := models.ParseScore(reply)

	err = progress.RecordSolved(data.Email, data.ItemID, score)
	if err != nil {
		if errors.Is(err, apperror.ErrAlreadySolved) {
			c.JSON(http.StatusOK, gin.H{"message": MsgAlreadyFinished})
			return
		}
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"score": score, "solved": true})
}

// GetProblemProgress returns (and lazily creates) a user's coding-problem tally
// format => GET /problemProgress/:email
func GetProblemProgress(c *gin.Context) {
	getProgress(c, environment.Env.ProblemProgress)
}

// GetShortQuestionProgress returns (and lazily creates) a user's short-question tally
// format => GET /shortQProgress/:email
func GetShortQuestionProgress(c *gin.Context) {
	getProgress(c, environment.Env.ShortQuestionProgress)
}

func getProgress(c *gin.Context, model models.ProgressModel) {

	email := strings.TrimSpace(c.Param("email"))
	if email == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{MsgEmailRequired})
		return
	}

	record, err := model.GetOrCreate(email)
	if err != nil {
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	c.JSON(http.StatusOK, record)
}
