package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "photoapi/docs"
	"photoapi/internal/config"
	"photoapi/internal/database"
	"photoapi/internal/domain/photo"
	"photoapi/internal/filestore"
	"photoapi/internal/middleware"
)

// @title Photo API
// @version 1.0
// @description Stores uploaded images on disk and keeps their filenames in a photos table.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.AutoMigrate(&photo.Photo{}); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	store, err := filestore.New(cfg.UploadDir)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("storing uploads in %s", store.Root())

	photoService := photo.NewService(photo.NewRepository(db), store, cfg.MaxUploadSize)
	photoHandler := photo.NewHandler(photoService)

	r := gin.New()
	r.Use(gin.Logger(), middleware.ErrorLogger(), middleware.CORS(cfg.CORSAllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	photo.RegisterRoutes(r, photoHandler)

	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal(err)
	}
}
