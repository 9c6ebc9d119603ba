package controllers

import (
	"errors"
	"net/http"

	"dev-discuss/apperror"
	"dev-discuss/environment"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// AddEvent stores a freeform event record
func AddEvent(c *gin.Context) {

	var data bson.M

	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{"Invalid JSON"})
		return
	}

	id, err := environment.Env.EventModel.Create(data)
	if err != nil {
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	c.JSON(http.StatusCreated, Created{id})
}

// ListEvents returns all events, newest first
func ListEvents(c *gin.Context) {

	events, err := environment.Env.EventModel.List()
	if err != nil {
		if errors.Is(err, apperror.ErrNoData) {
			c.JSON(http.StatusOK, []bson.M{})
			return
		}
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	c.JSON(http.StatusOK, events)
}

// GetEvent returns one event
func GetEvent(c *gin.Context) {

	event, err := environment.Env.EventModel.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, apperror.ErrNoData) {
			c.JSON(http.StatusNotFound, ErrorResponse{MsgNotFound})
			return
		}
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	c.JSON(http.StatusOK, event)
}
