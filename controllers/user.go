package controllers

import (
	"errors"
	"net/http"

	"dev-discuss/apperror"
	"dev-discuss/environment"
	"dev-discuss/models"

	"github.com/gin-gonic/gin"
)

// UpsertUser creates the profile on first write and refreshes it afterwards
func UpsertUser(c *gin.Context) {

	var data models.User

	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{"Invalid JSON"})
		return
	}

	user, err := environment.Env.UserModel.Validate(data)
	if err != nil {
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	if err := environment.Env.UserModel.Upsert(user); err != nil {
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"acknowledged": true})
}

// GetUser returns one profile
// format => GET /users?email=user@example.com
func GetUser(c *gin.Context) {

	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{MsgEmailRequired})
		return
	}

	user, err := environment.Env.UserModel.GetByEmail(email)
	if err != nil {
		if errors.Is(err, apperror.ErrNoData) {
			c.JSON(http.StatusNotFound, ErrorResponse{MsgNotFound})
			return
		}
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetPointsBreakdown returns the user's points and their per-category split,
// lazily creating a zeroed record
// format => GET /users/points-breakdown?email=user@example.com
func GetPointsBreakdown(c *gin.Context) {

	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{MsgEmailRequired})
		return
	}

	user, err := environment.Env.UserModel.GetPointsBreakdown(email)
	if err != nil {
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"email":           user.Email,
		"points":          user.Points,
		"pointsBreakdown": user.PointsBreakdown,
	})
}

// AwardLoginPoint grants the fixed login point to a user
func AwardLoginPoint(c *gin.Context) {

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

	err := environment.Env.UserModel.AwardPoints(data.Email, models.PointCategoryLogin, models.PointsPerLogin)
	if err != nil {
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"acknowledged": true})
}
