package controllers

import (
	"net/http"

	"dev-discuss/environment"

	"github.com/gin-gonic/gin"
)

// Root confirms the service is up
func Root(c *gin.Context) {
	c.String(http.StatusOK, "Dev Discuss Server is running now")
}

// Status reports basic in-process state for monitoring
func Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"aiCacheSize": environment.Env.AI.CacheSize(),
	})
}
