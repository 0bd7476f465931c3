package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"footyref/dto"
	"footyref/services"
)

var leagueService = services.NewLeagueService()

// ListLeagues returns every league matching the public filters with
// resolved country and team count. Deliberately unpaginated.
func ListLeagues(c *gin.Context) {
	filter := dto.LeagueFilter{
		Search:    c.Query("search"),
		CountryID: queryUint(c, "country"),
	}

	leagues, err := leagueService.ListPublic(filter)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   leagues,
	})
}

// GetLeague returns the public detail view of a league and its teams
func GetLeague(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	league, err := leagueService.GetDetail(id)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   league,
	})
}

// ListAdminLeagues returns the paginated admin league listing
func ListAdminLeagues(c *gin.Context) {
	response, err := leagueService.ListAdmin(queryPage(c))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   response,
	})
}

// CreateLeague validates and creates a league. The logo arrives either
// as a multipart file or as the logo_url form field.
func CreateLeague(c *gin.Context) {
	var req dto.LeagueRequest
	if err := c.ShouldBind(&req); err != nil {
		handleBindingError(c, err)
		return
	}

	file, _ := c.FormFile("logo")
	image := dto.NewImageInput(file, req.LogoURL)

	league, err := leagueService.Create(req, image)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   league,
	})
}

// UpdateLeague validates and applies changes to a league
func UpdateLeague(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req dto.LeagueRequest
	if err := c.ShouldBind(&req); err != nil {
		handleBindingError(c, err)
		return
	}

	file, _ := c.FormFile("logo")
	image := dto.NewImageInput(file, req.LogoURL)

	league, warning, err := leagueService.Update(id, req, image)
	if err != nil {
		handleError(c, err)
		return
	}

	response := gin.H{
		"status": "success",
		"data":   league,
	}
	if warning != "" {
		response["warning"] = warning
	}
	c.JSON(http.StatusOK, response)
}

// DeleteLeague removes a league; member teams go with it through the
// foreign-key cascade, their stored logos are cleaned up first
func DeleteLeague(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	warning, err := leagueService.Delete(id)
	if err != nil {
		handleError(c, err)
		return
	}

	response := gin.H{
		"status":  "success",
		"message": "League deleted successfully",
	}
	if warning != "" {
		response["warning"] = warning
	}
	c.JSON(http.StatusOK, response)
}
