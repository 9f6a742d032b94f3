package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/IamDalemark/energy-consumption-frontend/config"
	"github.com/IamDalemark/energy-consumption-frontend/handlers"
	"github.com/IamDalemark/energy-consumption-frontend/middleware"
	"github.com/IamDalemark/energy-consumption-frontend/services"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	backend := services.NewBackendClient(cfg.Backend)

	// Live feed polls the backend until shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	feed := services.NewLiveFeed(backend, cfg.Live)
	go feed.Run(ctx)

	// Initialize Gin router
	router := gin.Default()
	router.Use(middleware.SetupCORS(cfg.CORS))

	views := handlers.NewViewsHandler(backend)
	dataset := handlers.NewDatasetHandler(backend)
	predict := handlers.NewPredictHandler(backend)

	// Server-rendered views
	router.GET("/", views.Predictor)
	router.POST("/", views.PredictorSubmit)
	router.GET("/dataset", views.Dataset)

	// Proxy API
	api := router.Group("/api")
	{
		api.GET("/dataset", dataset.GetDataset)
		api.POST("/predict", predict.Predict)
		api.GET("/live", handlers.LiveWebSocket(feed))
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "UP",
			"message": "Energy consumption frontend is running",
		})
	})

	// Start server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Starting server on %s (dataset backend: %s, predict backend: %s)",
		addr, cfg.Backend.DatasetURL(), cfg.Backend.PredictURL())
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
