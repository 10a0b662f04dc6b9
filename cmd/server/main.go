package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Quinntyx/hackutd-2025/internal/config"
	"github.com/Quinntyx/hackutd-2025/internal/handler"
	"github.com/Quinntyx/hackutd-2025/internal/recorder"
	"github.com/Quinntyx/hackutd-2025/internal/repository"
	"github.com/Quinntyx/hackutd-2025/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	log.Printf("Car Advisor")
	log.Printf("Version: %s", Version)
	log.Printf("Build Time: %s", BuildTime)
	log.Printf("Git Commit: %s", GitCommit)
	log.Println("")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize catalog source
	var catalog repository.CatalogSource
	if cfg.Catalog.DSN != "" {
		catalog, err = repository.NewPostgresCatalog(
			cfg.Catalog.DSN,
			cfg.Catalog.MaxConnections,
			cfg.Catalog.MaxIdleConnections,
		)
		if err != nil {
			log.Fatalf("Failed to connect to catalog database: %v", err)
		}
		log.Println("✅ Catalog source: PostgreSQL")
	} else {
		catalog = repository.NewCSVCatalog(cfg.Catalog.CSVPath)
		log.Printf("✅ Catalog source: CSV (%s)", cfg.Catalog.CSVPath)
	}
	defer catalog.Close()

	// Initialize selection recorder
	var rec recorder.Recorder
	if cfg.Recorder.SQLitePath != "" {
		rec, err = recorder.NewSQLiteRecorder(cfg.Recorder.SQLitePath)
		if err != nil {
			log.Fatalf("Failed to open selection recorder: %v", err)
		}
		log.Printf("✅ Selection recorder: SQLite (%s)", cfg.Recorder.SQLitePath)
	} else {
		rec = recorder.NewNoopRecorder()
		log.Println("⚠️  Selection recording disabled - set RECORDER_SQLITE_PATH to enable")
	}
	defer rec.Close()

	// Initialize fuel price client
	priceClient := service.NewFuelPriceClient(&cfg.Pricing)
	if cfg.Pricing.Enabled {
		log.Printf("✅ Fuel price client initialized (base: %s)", cfg.Pricing.APIBase)
	} else {
		log.Println("⚠️  Fuel price lookup disabled - using default price table")
		log.Println("   Set COLLECTAPI_API_KEY environment variable to enable live prices")
	}

	// Initialize refinement adapter
	var openaiClient *service.OpenAIClient
	if cfg.OpenAI.Enabled {
		openaiClient = service.NewOpenAIClient(&cfg.OpenAI)
		log.Printf("✅ Refinement adapter initialized")
		log.Printf("   - API Base: %s", cfg.OpenAI.APIBase)
		log.Printf("   - Chat model: %s", cfg.OpenAI.ChatModel)
	} else {
		log.Println("⚠️  OpenAI is disabled - free-text refinement will keep weights unchanged")
		log.Println("   Set OPENAI_API_KEY environment variable to enable AI features")
	}
	refineAdapter := service.NewLLMRefinementAdapter(openaiClient)

	// Initialize services
	advisor := service.NewAdvisor(catalog, priceClient, rec)

	log.Println("✅ Services initialized")

	// Initialize handlers
	carsHandler := handler.NewCarsHandler(advisor)
	pricesHandler := handler.NewPricesHandler(advisor)
	refineHandler := handler.NewRefineHandler(refineAdapter)

	// Setup Gin router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.AllowedOrigins}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":     "healthy",
			"service":    "car-advisor",
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// Version endpoint
	router.GET("/version", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// API routes
	apiV1 := router.Group("/api/v1")
	{
		apiV1.GET("/cars", carsHandler.Recommend)
		apiV1.GET("/prices/:city", pricesHandler.Get)
		apiV1.POST("/refine", refineHandler.Refine)
	}

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("🚀 Starting server on %s", addr)

	go func() {
		if err := router.Run(addr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	log.Println("✅ Server stopped")
}
