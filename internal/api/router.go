package api

import (
	"database/sql"
	"log"
	"net/http"
	"time"

	"github.com/felippedeabreu/emocaoalunov3/internal/boundary"
	"github.com/felippedeabreu/emocaoalunov3/internal/config"
	"github.com/felippedeabreu/emocaoalunov3/internal/handler"
	"github.com/felippedeabreu/emocaoalunov3/internal/middleware"
	"github.com/felippedeabreu/emocaoalunov3/internal/repository"
	"github.com/felippedeabreu/emocaoalunov3/internal/service"
	"github.com/felippedeabreu/emocaoalunov3/internal/spatial"
	"github.com/gin-gonic/gin"
)

// SetupRouter wires repositories, services and handlers onto the HTTP routes
func SetupRouter(cfg *config.Config, db *sql.DB, b *boundary.Boundary) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	studentRepo := repository.NewStudentRepository(db)
	datasetService := service.NewDatasetService(studentRepo, cfg.DatasetPath, spatial.DefaultSanitizeOptions())

	// Import the dataset at startup; on failure the dashboard starts empty
	// and an admin can retry via POST /api/v1/dataset/reload.
	if report, count, err := datasetService.Reload(); err != nil {
		log.Printf("Initial dataset load failed: %v", err)
	} else {
		log.Printf("Dataset loaded: %d records, corrections: %+v", count, report)
	}

	mapService := service.NewMapService(studentRepo, b, spatial.EspiritoSantoBounds, spatial.EspiritoSantoCenter)
	vizService := service.NewVizService(studentRepo)
	statsService := service.NewStatsService(studentRepo)

	studentHandler := handler.NewStudentHandler(studentRepo)
	datasetHandler := handler.NewDatasetHandler(datasetService)
	mapHandler := handler.NewMapHandler(mapService)
	vizHandler := handler.NewVizHandler(vizService)
	statsHandler := handler.NewStatsHandler(statsService)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Emotion dashboard API is running",
		})
	})

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(100, time.Minute))
	{
		api.GET("/records", studentHandler.List)
		api.GET("/emotions", studentHandler.Emotions)
		api.GET("/regions", studentHandler.Regions)

		viz := api.Group("/viz")
		{
			viz.GET("/map", mapHandler.MapView)
			viz.GET("/distribution", vizHandler.Distribution)
			viz.GET("/scatter", vizHandler.Scatter)
			viz.GET("/parallel", vizHandler.Parallel)
		}

		stats := api.Group("/stats")
		{
			stats.GET("/describe", statsHandler.Describe)
			stats.GET("/dispersion", statsHandler.Dispersion)
		}

		api.GET("/region/boundary", mapHandler.Boundary)
		api.GET("/dataset/corrections", datasetHandler.Corrections)

		admin := api.Group("/dataset")
		admin.Use(middleware.RequireAuth(cfg.JWTSecret))
		{
			admin.POST("/reload", datasetHandler.Reload)
		}
	}

	return r
}
