package main

import (
	"embed"
	"html/template"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	_ "tech-for-trees/docs" // registers the swagger spec
	"tech-for-trees/internal/config"
	"tech-for-trees/internal/location"
	"tech-for-trees/internal/observability"
	"tech-for-trees/internal/places"
	"tech-for-trees/internal/pledge"
	"tech-for-trees/internal/providers/overpass"
	"tech-for-trees/internal/providers/postcodes"
)

//go:embed templates/*.html
var templatesFS embed.FS

// App encapsulates application dependencies
type App struct {
	router          *gin.Engine
	logger          *slog.Logger
	cfg             *config.Config
	registry        *prometheus.Registry
	locationService location.Service
	placesService   places.Service
	pledgeService   pledge.Service
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	postcodesClient := postcodes.NewClient(logger,
		postcodes.WithBaseURL(cfg.Providers.Postcodes.BaseURL),
		postcodes.WithTimeout(cfg.Providers.Postcodes.Timeout),
		postcodes.WithUserAgent(cfg.Providers.UserAgent),
	)
	overpassClient := overpass.NewClient(logger,
		overpass.WithURL(cfg.Providers.Overpass.URL),
		overpass.WithTimeout(cfg.Providers.Overpass.Timeout),
		overpass.WithUserAgent(cfg.Providers.UserAgent),
	)

	locationSvc := location.NewLocationService(postcodesClient, logger)
	placesSvc := places.NewPlacesService(overpassClient, logger)

	app := &App{
		router:          router,
		logger:          logger,
		cfg:             cfg,
		registry:        observability.InitRegistry(),
		locationService: locationSvc,
		placesService:   placesSvc,
		pledgeService:   pledge.NewPledgeService(locationSvc, placesSvc, logger),
	}

	logger.Info("application initialized")

	// Register routes
	app.registerRoutes()

	return app
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
