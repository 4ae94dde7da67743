package routes

import (
	"context"
	"log"

	_ "portal_servicos/docs" // This will be auto-generated
	"portal_servicos/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run wires the dependencies described by cfg and serves until the process
// exits.
func Run(cfg config.Config) {
	h, cleanup, err := buildHandlers(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to wire the application: %v", err)
	}
	defer cleanup()

	router := NewRouter(h)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter mounts the public API under /v1 plus the swagger UI.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addServiceRequestRoutes(v1, h)
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
