package main

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	v1 "footyref/api/v1"
	"footyref/config"
	"footyref/database"
	"footyref/lib/filestore"
	"footyref/logger"
	"footyref/middleware"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.Debug)
	defer logger.Sync()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := database.Initialize(cfg.DatabaseURL); err != nil {
		logger.Log.Fatalw("Failed to initialize database", "error", err)
	}
	if err := database.Seed(); err != nil {
		logger.Log.Fatalw("Failed to seed database", "error", err)
	}

	if err := filestore.Init(cfg.UploadDir); err != nil {
		logger.Log.Fatalw("Failed to initialize file store", "error", err)
	}

	// Initialize router
	router := gin.Default()

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	// Uploaded images are public
	router.Static("/uploads", filestore.BaseDir())

	// API routes
	v1.RegisterRoutes(router.Group("/api/v1"))

	logger.Log.Infow("footyref starting", "port", cfg.Port, "env", cfg.Env)

	// MethodOverride wraps the router so browser forms can tunnel
	// PUT/DELETE over POST before routing happens
	if err := http.ListenAndServe(":"+cfg.Port, middleware.MethodOverride(router)); err != nil {
		logger.Log.Fatalw("Failed to start server", "error", err)
	}
}
