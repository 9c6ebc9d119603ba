package controllers

import (
	"errors"
	"net/http"

	"dev-discuss/apperror"
	"dev-discuss/environment"
	"dev-discuss/models"

	"github.com/gin-gonic/gin"
)

// AddSave bookmarks a question for a user
func AddSave(c *gin.Context) {

	var data models.SavedQuestion

	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{"Invalid JSON"})
		return
	}

	save, err := environment.Env.SaveModel.Validate(data)
	if err != nil {
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	id, err := environment.Env.SaveModel.Create(save)
	if err != nil {
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	c.JSON(http.StatusCreated, Created{id})
}

// ListSaves returns a user's bookmarks
// format => GET /saves?email=user@example.com
func ListSaves(c *gin.Context) {

	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{MsgEmailRequired})
		return
	}

	saves, err := environment.Env.SaveModel.ListByEmail(email)
	if err != nil {
		if errors.Is(err, apperror.ErrNoData) {
			c.JSON(http.StatusOK, []models.SavedQuestion{})
			return
		}
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	c.JSON(http.StatusOK, saves)
}

// DeleteSave removes one bookmark
func DeleteSave(c *gin.Context) {

	err := environment.Env.SaveModel.Delete(c.Param("id"))
	if err != nil {
		if errors.Is(err, apperror.ErrNoData) {
			c.JSON(http.StatusNotFound, ErrorResponse{MsgNotFound})
			return
		}
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
