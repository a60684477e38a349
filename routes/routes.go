package routes

import (
	"net/http"
	"time"

	"studyplanner/handlers"
	"studyplanner/middleware"
	"studyplanner/templates"
	"studyplanner/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterPageRoutes registers the HTML pages.
func RegisterPageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", hb.IndexHandler)
	r.GET("/chat", hb.ChatPageHandler)
	r.Match([]string{http.MethodGet, http.MethodPost}, "/schedule", hb.ScheduleHandler)
	r.Match([]string{http.MethodGet, http.MethodPost}, "/quiz", hb.QuizHandler)
}

// RegisterAIRoutes registers AI endpoints.
func RegisterAIRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/chat", hb.AIChatHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))

	RegisterPageRoutes(r, hb)
	RegisterAIRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}

// NewRouter builds the Gin engine with templates, middleware and routes.
func NewRouter(hb *handlers.HandlerBundle, maxRequestsPerMin int, logger *zap.Logger) (*gin.Engine, error) {
	tmpl, err := templates.Load()
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.SetHTMLTemplate(tmpl)
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestContext(logger))
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(maxRequestsPerMin))

	RegisterRoutes(router, hb)
	return router, nil
}
