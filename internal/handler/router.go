package handler

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(remixHandler *RemixHandler, savedHandler *SavedHandler, healthHandler *HealthHandler, allowedOrigins []string) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", ClientIDHeader},
	}))

	r.POST("/remix", remixHandler.PostRemix)
	r.GET("/saved", savedHandler.GetSaved)
	r.POST("/saved", savedHandler.PostSaved)
	r.DELETE("/saved/:id", savedHandler.DeleteSaved)
	r.GET("/health", healthHandler.GetHealth)

	return r
}
