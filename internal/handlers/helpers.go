package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/parkops/themepark-backend/internal/models"
)

// parseDepartment validates the :department path token. On failure it writes
// the 400 response and returns false; no query runs for an unknown token.
func parseDepartment(c *gin.Context) (models.Department, bool) {
	dept, err := models.ParseDepartment(c.Param("department"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_department",
			"message": err.Error(),
		})
		return "", false
	}
	return dept, true
}

// parseIDParam parses a positive integer path parameter. On failure it writes
// the 400 response and returns false.
func parseIDParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_id",
			"message": name + " must be a positive integer",
		})
		return 0, false
	}
	return id, true
}

// parseIDQuery parses a positive integer query parameter.
func parseIDQuery(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Query(name))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": name + " must be a positive integer",
		})
		return 0, false
	}
	return id, true
}
