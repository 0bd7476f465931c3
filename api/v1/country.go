package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"footyref/services"
)

var countryService = services.NewCountryService()

// ListCountries returns countries shaped for filter dropdowns.
// With hasLeagues=1 only countries owning at least one league appear.
func ListCountries(c *gin.Context) {
	hasLeagues := c.Query("hasLeagues") == "1" || c.Query("hasLeagues") == "true"

	countries, err := countryService.Options(hasLeagues)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   countries,
	})
}
