package main

import (
	"log"
	"time"

	"datachat/ai"
	"datachat/cache"
	"datachat/charts"
	"datachat/config"
	"datachat/dataset"
	"datachat/db"
	_ "datachat/docs" // Swagger docs
	"datachat/handlers"
	"datachat/service"
	"datachat/stats"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.GetConfig()

	// Initialize database
	database, err := db.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	// Initialize cache
	appCache := cache.New()

	// Initialize DashScope AI client
	aiService, err := ai.New(cfg.APIKey, cfg.ModelName, appCache)
	if err != nil {
		log.Fatalf("Failed to initialize AI service: %v", err)
	}
	defer aiService.Close()

	// Initialize SQL Server service (optional)
	var sqlService *service.SQLServerService
	if cfg.SQLServer.Server != "" && cfg.SQLServer.Database != "" {
		sqlService, err = service.NewSQLServerService(cfg.SQLServer)
		if err != nil {
			log.Printf("Warning: Failed to initialize SQL Server service: %v", err)
			log.Println("SQL Server dataset loading will be unavailable")
		} else {
			defer sqlService.Close()
			log.Println("SQL Server service initialized successfully")
		}
	}

	// Initialize the analysis pipeline
	datasets := dataset.NewStore(cfg.SessionTTL)
	inferencer := dataset.NewInferencer()
	if cfg.OrdinalThreshold > 0 {
		inferencer.OrdinalThreshold = cfg.OrdinalThreshold
	}
	profiler := dataset.NewProfiler(inferencer, cfg.SchemaStrict)
	engine := stats.NewEngine(cfg.EnabledOperations...)
	validator := charts.NewValidator(cfg.RequireChartSchema)

	// Initialize handlers
	h := handlers.New(database, aiService, sqlService, datasets, profiler, engine, validator, cfg.MaxUploadBytes)

	// Setup Gin router
	r := gin.Default()

	// CORS configuration - allow all origins so browser frontends can
	// talk to the API from anywhere
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS", "HEAD"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Content-Length", "Accept", "Accept-Encoding", "Authorization", "Cache-Control", "X-Requested-With", "X-Session-ID"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Routes
	r.GET("/health", h.HealthHandler)
	r.POST("/api/chat", h.ChatHandler)

	// Dataset routes
	r.POST("/api/dataset", h.IngestDatasetHandler)
	r.POST("/api/dataset/upload", h.UploadDatasetHandler)
	r.POST("/api/dataset/sql", h.SQLDatasetHandler)
	r.GET("/api/dataset/profile", h.ProfileHandler)
	r.DELETE("/api/dataset", h.DeleteDatasetHandler)

	// Chat history routes
	r.GET("/api/history", h.GetHistoryHandler)
	r.DELETE("/api/history", h.ClearHistoryHandler)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
