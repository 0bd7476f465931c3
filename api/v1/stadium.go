package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"footyref/dto"
	"footyref/services"
)

var stadiumService = services.NewStadiumService()

// ListStadiums returns the paginated public stadium listing. Search
// matches name or city; country filters on the exact id.
func ListStadiums(c *gin.Context) {
	filter := dto.StadiumFilter{
		Search:    c.Query("search"),
		CountryID: queryUint(c, "country"),
		Page:      queryPage(c),
	}

	response, err := stadiumService.ListPublic(filter)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   response,
	})
}

// GetStadium returns the public detail view of a stadium
func GetStadium(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	stadium, err := stadiumService.GetDetail(id)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   stadium,
	})
}

// ListAdminStadiums returns the paginated admin stadium listing
func ListAdminStadiums(c *gin.Context) {
	response, err := stadiumService.ListAdmin(queryPage(c))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   response,
	})
}

// CreateStadium validates and creates a stadium (multipart for image)
func CreateStadium(c *gin.Context) {
	var req dto.StadiumRequest
	if err := c.ShouldBind(&req); err != nil {
		handleBindingError(c, err)
		return
	}

	file, _ := c.FormFile("image")
	image := dto.NewImageInput(file, req.ImageURL)

	stadium, err := stadiumService.Create(req, image)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   stadium,
	})
}

// UpdateStadium validates and applies changes to a stadium
func UpdateStadium(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req dto.StadiumRequest
	if err := c.ShouldBind(&req); err != nil {
		handleBindingError(c, err)
		return
	}

	file, _ := c.FormFile("image")
	image := dto.NewImageInput(file, req.ImageURL)

	stadium, warning, err := stadiumService.Update(id, req, image)
	if err != nil {
		handleError(c, err)
		return
	}

	response := gin.H{
		"status": "success",
		"data":   stadium,
	}
	if warning != "" {
		response["warning"] = warning
	}
	c.JSON(http.StatusOK, response)
}

// DeleteStadium removes a stadium, deleting its locally stored image first
func DeleteStadium(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	warning, err := stadiumService.Delete(id)
	if err != nil {
		handleError(c, err)
		return
	}

	response := gin.H{
		"status":  "success",
		"message": "Stadium deleted successfully",
	}
	if warning != "" {
		response["warning"] = warning
	}
	c.JSON(http.StatusOK, response)
}
