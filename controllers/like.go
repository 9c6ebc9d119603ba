package controllers

import (
	"errors"
	"net/http"

	"dev-discuss/apperror"
	"dev-discuss/environment"

	"github.com/gin-gonic/gin"
)

// ToggleLike flips the caller's membership in a question's likes set
// format => POST /questions/:id/like
func ToggleLike(c *gin.Context) {

	id := c.Param("id")

	data := struct {
		Email string `json:"email"`
	}{}

	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{"Invalid JSON"})
		return
	}

	if data.Email == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{MsgEmailRequired})
		return
	}

	liked, err := environment.Env.QuestionModel.ToggleLike(id, data.Email)
	if err != nil {
		if errors.Is(err, apperror.ErrNoData) {
			c.JSON(http.StatusNotFound, ErrorResponse{MsgQuestionNotFound})
			return
		}
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": liked})
}
