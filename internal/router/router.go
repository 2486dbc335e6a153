package router

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/careline/case-service/api"
	"github.com/careline/case-service/internal/handler"
	"github.com/careline/case-service/internal/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	pathHealth  = "/health"
	pathReady   = "/ready"
	pathSwagger = "/swagger"
)

// Options carries the cross-cutting pieces every route shares.
type Options struct {
	Logger      *slog.Logger
	RateLimiter *middleware.RateLimiter
	MaxBodySize int64
}

func New(complaints *handler.ComplaintHandler, frauds *handler.FraudHandler, opts Options) http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())
	if opts.Logger != nil {
		r.Use(middleware.RequestLogger(opts.Logger))
	}
	if opts.RateLimiter != nil {
		r.Use(opts.RateLimiter.Handle)
	}
	if opts.MaxBodySize > 0 {
		r.Use(func(c *gin.Context) {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, opts.MaxBodySize)
			c.Next()
		})
	}

	r.GET(pathHealth, handler.Health)
	r.GET(pathReady, handler.Ready)
	r.GET(pathSwagger, func(c *gin.Context) { c.Redirect(http.StatusFound, pathSwagger+"/") })
	r.GET(pathSwagger+"/*any", func(c *gin.Context) {
		if strings.TrimPrefix(c.Param("any"), "/") == "openapi.json" {
			c.Data(http.StatusOK, "application/json", api.OpenAPISpec)
			return
		}
		if strings.TrimPrefix(c.Param("any"), "/") == "" {
			c.Request.URL.Path = pathSwagger + "/index.html"
			c.Request.RequestURI = pathSwagger + "/index.html"
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/openapi.json"))(c)
	})

	complaintGroup := r.Group("/api/complaints")
	{
		complaintGroup.POST("", complaints.Create)
		complaintGroup.GET("", complaints.List)
		complaintGroup.GET("/phone/:phoneNumber", complaints.GetByPhone)
		complaintGroup.GET("/:complaintId", complaints.Get)
		complaintGroup.PUT("/:complaintId", complaints.Update)
	}

	fraudGroup := r.Group("/api/fraud")
	{
		// /stats must be registered before the :fraudId pattern it would
		// otherwise match.
		fraudGroup.GET("/stats", frauds.Stats)
		fraudGroup.POST("", frauds.Create)
		fraudGroup.GET("", frauds.List)
		fraudGroup.GET("/phone/:phoneNumber", frauds.GetByPhone)
		fraudGroup.GET("/:fraudId", frauds.Get)
		fraudGroup.PUT("/:fraudId", frauds.Update)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	return r
}
