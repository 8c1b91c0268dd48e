package handler

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"museum-review/internal/auth"
	"museum-review/internal/middleware"
)

// Routes bundles the handlers mounted by NewRouter.
type Routes struct {
	Submissions   *SubmissionHandler
	Articles      *ArticleHandler
	Review        *ReviewHandler
	Publication   *PublicationHandler
	Health        *HealthHandler
	Authenticator auth.Authenticator

	// CORSOrigins lists the allowed browser origins; empty allows any.
	CORSOrigins []string
	// FilesDir, when set, is served under /files for the local store.
	FilesDir string
}

// NewRouter builds the gin engine with middleware and all API routes.
func NewRouter(r Routes) *gin.Engine {
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(r.CORSOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = r.CORSOrigins
	}

	router := gin.New()
	router.MaxMultipartMemory = MaxMultipartMemory
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(middleware.AccessLog())
	// Preflight requests never match a route, so CORS runs on the engine.
	router.Use(cors.New(corsConfig))

	// Health and metrics endpoints
	router.GET("/health", r.Health.Health)
	router.GET("/ready", r.Health.Ready)
	router.GET("/live", r.Health.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if r.FilesDir != "" {
		router.Static("/files", r.FilesDir)
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/submissions", r.Submissions.Submit)
		v1.GET("/articles", r.Articles.ListPublished)
		v1.GET("/articles/:id", r.Articles.GetPublished)

		review := v1.Group("/review")
		review.Use(middleware.RequireSession(r.Authenticator))
		{
			review.GET("/stages", r.Review.ListStages)
			review.GET("/stages/:stage/articles", r.Review.ListPending)
			review.POST("/stages/:stage/articles/:id/approve", r.Review.Approve)
			review.POST("/stages/:stage/articles/:id/reject", r.Review.Reject)
			review.GET("/articles/:id", r.Review.GetArticle)
			review.PATCH("/articles/:id", r.Review.Edit)

			publication := review.Group("/publication/articles/:id")
			{
				publication.POST("/keywords", r.Publication.ExtractKeywords)
				publication.DELETE("/tags", r.Publication.RemoveTags)
				publication.POST("/publish", r.Publication.Publish)
			}
		}
	}

	return router
}
