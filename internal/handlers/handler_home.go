package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getHome godoc
// @Summary Welcome message
// @Tags root
// @Produce plain
// @Success 200 {string} string
// @Router / [get]
func getHome(c *gin.Context) {
	c.String(http.StatusOK, "Welcome to the Book Catalog API. Documentation is available at /api-docs")
}

// getHealth godoc
// @Summary Liveness check
// @Tags root
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func getHealth(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}
