package v1

import (
	"github.com/gin-gonic/gin"

	"footyref/middleware"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Auth endpoints
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", Register)
		authGroup.POST("/login", Login)
		authGroup.POST("/logout", Logout)
		authGroup.GET("/me", middleware.AuthMiddleware(), GetCurrentUser)
	}

	// Public browsing endpoints
	router.GET("/countries", ListCountries)

	leagueGroup := router.Group("/leagues")
	{
		leagueGroup.GET("", ListLeagues)
		leagueGroup.GET("/:id", GetLeague)
	}

	stadiumGroup := router.Group("/stadiums")
	{
		stadiumGroup.GET("", ListStadiums)
		stadiumGroup.GET("/:id", GetStadium)
	}

	teamGroup := router.Group("/teams")
	{
		teamGroup.GET("", ListTeams)
		teamGroup.GET("/:id", GetTeam)
	}

	// Admin back-office - authenticated admins only
	adminGroup := router.Group("/admin")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		adminGroup.GET("/dashboard", GetDashboard)

		adminGroup.GET("/leagues", ListAdminLeagues)
		adminGroup.POST("/leagues", CreateLeague)
		adminGroup.PUT("/leagues/:id", UpdateLeague)
		adminGroup.DELETE("/leagues/:id", DeleteLeague)

		adminGroup.GET("/stadiums", ListAdminStadiums)
		adminGroup.POST("/stadiums", CreateStadium)
		adminGroup.PUT("/stadiums/:id", UpdateStadium)
		adminGroup.DELETE("/stadiums/:id", DeleteStadium)

		adminGroup.GET("/teams", ListAdminTeams)
		adminGroup.POST("/teams", CreateTeam)
		adminGroup.PUT("/teams/:id", UpdateTeam)
		adminGroup.DELETE("/teams/:id", DeleteTeam)
	}
}
