package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tech-for-trees/internal/observability"
)

// registerRoutes sets up all endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	// Pledge form
	app.router.GET("/", app.handleForm)
	app.router.POST("/donate", app.handleDonate)

	// JSON API
	api := app.router.Group("/api")
	api.POST("/pledges", app.handleCreatePledge)
	api.GET("/postcodes/:postcode", app.handleResolvePostcode)
	api.GET("/places", app.handleFindPlaces)

	app.router.GET("/metrics", gin.WrapH(observability.MetricsHandler(app.registry)))

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(301, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
