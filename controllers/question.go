package controllers

import (
	"errors"
	"net/http"
	"time"

	"dev-discuss/apperror"
	"dev-discuss/environment"
	"dev-discuss/models"

	"github.com/gin-gonic/gin"
)

// ListQuestions returns all questions, newest first
func ListQuestions(c *gin.Context) {

	questions, err := environment.Env.QuestionModel.List()
	if err != nil {
		if errors.Is(err, apperror.ErrNoData) {
			c.JSON(http.StatusNotFound, ErrorResponse{MsgNoQuestions})
			return
		}
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	c.JSON(http.StatusOK, questions)
}

// GetQuestion returns the specified question
func GetQuestion(c *gin.Context) {

	id := c.Param("id")

	question, err := environment.Env.QuestionModel.Get(id)
	if err != nil {
		if errors.Is(err, apperror.ErrNoData) {
			c.JSON(http.StatusNotFound, ErrorResponse{MsgQuestionNotFound})
			return
		}
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	// visits are gathered best-effort and never fail the read
	environment.Env.Tracker.SaveVisitor("question", id, c.Query("email"))

	c.JSON(http.StatusOK, question)
}

// AddQuestion creates a new question
func AddQuestion(c *gin.Context) {

	var data models.Question

	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{"Invalid JSON"})
		return
	}

	id, err := environment.Env.QuestionModel.Create(&data)
	if err != nil {
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	c.JSON(http.StatusCreated, Created{id})
}

// ListQuestionsByTag filters questions by a tag value
func ListQuestionsByTag(c *gin.Context) {

	tag := c.Param("tag")

	questions, err := environment.Env.QuestionModel.ListByTag(tag)
	if err != nil {
		if errors.Is(err, apperror.ErrNoData) {
			c.JSON(http.StatusOK, []models.Question{})
			return
		}
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	c.JSON(http.StatusOK, questions)
}

// DeleteUserQuestion removes a question, scoped to its owner
// format => DELETE /userQuestions/:id?email=user@example.com
func DeleteUserQuestion(c *gin.Context) {

	id := c.Param("id")
	email := c.Query("email")

	if email == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{MsgEmailRequired})
		return
	}

	err := environment.Env.QuestionModel.DeleteByOwner(id, email)
	if err != nil {
		if errors.Is(err, apperror.ErrNoData) {
			c.JSON(http.StatusNotFound, ErrorResponse{MsgQuestionNotFound})
			return
		}
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// ListTags returns the tag histogram over all questions
func ListTags(c *gin.Context) {

	tags, err := environment.Env.QuestionModel.TagCounts()
	if err != nil {
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	c.JSON(http.StatusOK, tags)
}

// GetQuestionVisits returns the number of visits of a question over the
// last 30 days (live from the analytics store)
func GetQuestionVisits(c *gin.Context) {

	id := c.Param("id")

	startDT := time.Now().AddDate(0, 0, -30)
	visits, err := environment.Env.Tracker.GetVisits("question", id, startDT)
	if err != nil {
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	visitors, err := environment.Env.Tracker.RecentVisitors("question", id)
	if err != nil {
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"visits": visits, "recentVisitors": visitors})
}
