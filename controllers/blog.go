package controllers

import (
	"errors"
	"net/http"

	"dev-discuss/apperror"
	"dev-discuss/environment"
	"dev-discuss/models"

	"github.com/gin-gonic/gin"
)

// AddBlog creates a new blog post
func AddBlog(c *gin.Context) {

	var data models.Blog

	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{"Invalid JSON"})
		return
	}

	id, err := environment.Env.BlogModel.Create(&data)
	if err != nil {
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	c.JSON(http.StatusCreated, Created{id})
}

// ListBlogs returns all blog posts, newest first
func ListBlogs(c *gin.Context) {

	blogs, err := environment.Env.BlogModel.List()
	if err != nil {
		if errors.Is(err, apperror.ErrNoData) {
			c.JSON(http.StatusOK, []models.Blog{})
			return
		}
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	c.JSON(http.StatusOK, blogs)
}

// GetBlog returns one blog post
func GetBlog(c *gin.Context) {

	blog, err := environment.Env.BlogModel.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, apperror.ErrNoData) {
			c.JSON(http.StatusNotFound, ErrorResponse{MsgNotFound})
			return
		}
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	c.JSON(http.StatusOK, blog)
}
