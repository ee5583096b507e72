package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"labourhub-server/config"
	"labourhub-server/database"
	"labourhub-server/jobs"
	"labourhub-server/middleware"
	"labourhub-server/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	config.Load()

	if err := database.Initialize(); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}

	if config.AppConfig.Server.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false

	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.RequestSizeMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "LabourHub server is running",
			"time":    time.Now().UTC(),
		})
	})

	routes.Setup(database.DB)

	api := router.Group("/api")
	routes.Register(api)

	reconcileJob := jobs.NewReconcileJob(database.DB)
	reconcileJob.Start()
	defer reconcileJob.Stop()

	port := os.Getenv("PORT")
	if port == "" {
		port = config.AppConfig.Server.Port
	}

	log.Printf("Server starting on port %s", port)
	if err := router.Run("0.0.0.0:" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
