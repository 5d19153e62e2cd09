package photo

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the photo endpoints under /photos.
func RegisterRoutes(r gin.IRouter, h *Handler) {
	photos := r.Group("/photos")
	{
		photos.GET("", h.List)
		photos.POST("", h.Create)

		photos.GET("/id/:id", h.GetByID)
		photos.PUT("/id/:id", h.Rename)
		photos.DELETE("/id/:id", h.DeleteByID)

		photos.GET("/file/:filename", h.GetByFilename)
		photos.DELETE("/file/:filename", h.DeleteByFilename)

		photos.POST("/upload", h.Upload)
		photos.GET("/download/:filename", h.Download)
	}
}
