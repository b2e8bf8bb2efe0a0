package server

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/mviana/showbill/config"
	"github.com/mviana/showbill/internal/handlers"
	"github.com/mviana/showbill/internal/middleware"
	"github.com/mviana/showbill/internal/repository"
	"gorm.io/gorm"
)

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	r := gin.Default()

	setupRoutes(r, db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return r.Run(":" + port)
}

func setupRoutes(r *gin.Engine, db *gorm.DB) {
	r.Use(middleware.RequestID())

	venueRepo := repository.NewVenueRepo(db)
	artistRepo := repository.NewArtistRepo(db)
	showRepo := repository.NewShowRepo(db)

	venueHandler := handlers.NewVenueHandler(venueRepo, showRepo)
	artistHandler := handlers.NewArtistHandler(artistRepo, showRepo)
	showHandler := handlers.NewShowHandler(showRepo)

	v1 := r.Group("/v1")
	{
		venues := v1.Group("/venues")
		{
			venues.GET("", venueHandler.List)
			venues.POST("/search", venueHandler.Search)
			venues.GET("/:id", venueHandler.Get)
			venues.POST("", venueHandler.Create)
			venues.PUT("/:id", venueHandler.Update)
			venues.DELETE("/:id", venueHandler.Delete)
		}

		artists := v1.Group("/artists")
		{
			artists.GET("", artistHandler.List)
			artists.POST("/search", artistHandler.Search)
			artists.GET("/:id", artistHandler.Get)
			artists.POST("", artistHandler.Create)
			artists.PUT("/:id", artistHandler.Update)
		}

		shows := v1.Group("/shows")
		{
			shows.GET("", showHandler.List)
			shows.POST("", showHandler.Create)
		}
	}
}
