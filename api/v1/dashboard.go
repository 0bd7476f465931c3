package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"footyref/services"
)

var dashboardService = services.NewDashboardService()

// GetDashboard returns the admin dashboard aggregates, recomputed on
// every call
func GetDashboard(c *gin.Context) {
	stats, err := dashboardService.Stats()
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   stats,
	})
}
