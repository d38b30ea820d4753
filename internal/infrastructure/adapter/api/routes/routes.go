package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/alert-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/alert-processor/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/alert-processor/internal/infrastructure/adapter/api/middleware"
)

// Handlers groups the HTTP handlers mounted by SetupRoutes
type Handlers struct {
	Event  *handler.EventHandler
	User   *handler.UserHandler
	Health *handler.HealthHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers) {
	// POST /event
	router.POST("/event", h.Event.IngestEvent)
	router.POST("/event/", h.Event.IngestEvent)

	userRoutes := router.Group("/user")
	{
		// GET /user/:userId
		userRoutes.GET("/:userId", h.User.GetUser)

		// GET /user/:userId/events?limit=N
		userRoutes.GET("/:userId/events", h.User.RecentEvents)
	}

	router.GET("/health", h.Health.Health)
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Request IDs must be assigned before anything logs
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
}

// NewRouter builds a gin engine with middlewares and routes installed
func NewRouter(logger coreport.Logger, h Handlers) *gin.Engine {
	router := gin.New()
	router.RedirectTrailingSlash = false
	SetupMiddlewares(router, logger)
	SetupRoutes(router, h)
	return router
}
