package v1

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"footyref/services"
)

func init() {
	// Report binding failures under the form/json field name the client
	// actually sent, not the Go struct field name
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := fld.Tag.Get("form")
			if name == "" {
				name = strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			}
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// handleError translates service errors into the HTTP contract:
// 422 with per-field messages for validation failures, 404 for missing
// rows, 500 for everything else.
func handleError(c *gin.Context, err error) {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": "error",
			"errors": verr.Fields,
		})
		return
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Resource not found",
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"status":  "error",
		"message": err.Error(),
	})
}

// handleBindingError translates gin binding failures. Validator errors
// become the same 422 per-field shape as service validation; anything
// else is a plain bad request.
func handleBindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = bindingMessage(fe)
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": "error",
			"errors": fields,
		})
		return
	}

	c.JSON(http.StatusBadRequest, gin.H{
		"status":  "error",
		"message": "Invalid request data: " + err.Error(),
	})
}

func bindingMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "url":
		return "must be a valid URL"
	case "email":
		return "must be a valid email address"
	default:
		return "is invalid"
	}
}

// paramID parses the :id path parameter
func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid id",
		})
		return 0, false
	}
	return uint(id), true
}

// queryUint parses an optional numeric query parameter; anything
// unparseable counts as absent
func queryUint(c *gin.Context, name string) uint {
	value, err := strconv.ParseUint(c.Query(name), 10, 64)
	if err != nil {
		return 0
	}
	return uint(value)
}

// queryPage parses the page query parameter, defaulting to 1
func queryPage(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
