package controllers

import (
	"errors"
	"net/http"
	"strings"

	"dev-discuss/apperror"
	"dev-discuss/environment"
	"dev-discuss/models"

	"github.com/gin-gonic/gin"
)

// AddComment appends a comment to a question
// format => POST /questions/comments/:id
func AddComment(c *gin.Context) {

	id := c.Param("id")

	// comment plus the commenting user's identity for the point award
	data := struct {
		models.Comment
		Email string `json:"email"`
	}{}

	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{"Invalid JSON"})
		return
	}

	// id format is checked before anything else so the caller can
	// distinguish a malformed id from a missing question
	if models.ObjectID(id).IsZero() {
		c.JSON(http.StatusBadRequest, ErrorResponse{MsgInvalidQuestionID})
		return
	}

	comment, err := environment.Env.QuestionModel.ValidateComment(data.Comment)
	if err != nil {
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	// the commenting user must be known, the comment awards points
	if strings.TrimSpace(data.Email) == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{MsgEmailRequired})
		return
	}

	err = environment.Env.QuestionModel.AddComment(id, comment, data.Email)
	if err != nil {
		if errors.Is(err, apperror.ErrNoData) {
			c.JSON(http.StatusNotFound, ErrorResponse{MsgQuestionNotFound})
			return
		}
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "comment": comment})
}
