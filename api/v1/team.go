package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"footyref/dto"
	"footyref/services"
)

var teamService = services.NewTeamService()

// ListTeams returns the paginated public team listing with league,
// derived country, and stadium resolved
func ListTeams(c *gin.Context) {
	filter := dto.TeamFilter{
		Search:   c.Query("search"),
		LeagueID: queryUint(c, "league"),
		Page:     queryPage(c),
	}

	response, err := teamService.ListPublic(filter)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   response,
	})
}

// GetTeam returns the public detail view of a team
func GetTeam(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	team, err := teamService.GetDetail(id)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   team,
	})
}

// ListAdminTeams returns the paginated admin team listing
func ListAdminTeams(c *gin.Context) {
	response, err := teamService.ListAdmin(queryPage(c))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   response,
	})
}

// CreateTeam validates and creates a team (multipart for logo)
func CreateTeam(c *gin.Context) {
	var req dto.TeamRequest
	if err := c.ShouldBind(&req); err != nil {
		handleBindingError(c, err)
		return
	}

	file, _ := c.FormFile("logo")
	image := dto.NewImageInput(file, req.LogoURL)

	team, err := teamService.Create(req, image)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   team,
	})
}

// UpdateTeam validates and applies changes to a team
func UpdateTeam(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req dto.TeamRequest
	if err := c.ShouldBind(&req); err != nil {
		handleBindingError(c, err)
		return
	}

	file, _ := c.FormFile("logo")
	image := dto.NewImageInput(file, req.LogoURL)

	team, warning, err := teamService.Update(id, req, image)
	if err != nil {
		handleError(c, err)
		return
	}

	response := gin.H{
		"status": "success",
		"data":   team,
	}
	if warning != "" {
		response["warning"] = warning
	}
	c.JSON(http.StatusOK, response)
}

// DeleteTeam removes a team, deleting its locally stored logo first
func DeleteTeam(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	warning, err := teamService.Delete(id)
	if err != nil {
		handleError(c, err)
		return
	}

	response := gin.H{
		"status":  "success",
		"message": "Team deleted successfully",
	}
	if warning != "" {
		response["warning"] = warning
	}
	c.JSON(http.StatusOK, response)
}
