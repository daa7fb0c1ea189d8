package api

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	h "sayarti/internal/http/handlers"
	"sayarti/internal/http/middleware"
)

func NewRouter(api *h.API, log *logrus.Logger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(log), gin.Recovery(), corsMiddleware())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.WithError(err).Warn("failed to set trusted proxies")
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	root := r.Group("/api")
	{
		root.GET("/health", api.Health)
		root.GET("/db-check", api.DBCheck)

		auth := root.Group("/auth")
		auth.POST("/login", api.Login)

		protected := root.Group("")
		protected.Use(middleware.RequireAuth(api.Auth))
		{
			protected.GET("/dashboard", api.GetDashboard)

			cars := protected.Group("/cars")
			cars.GET("", api.GetCars)
			cars.POST("", api.CreateCar)
			cars.PUT("/:id", api.UpdateCar)
			cars.DELETE("/:id", api.DeleteCar)

			protected.GET("/maintenance-types", api.GetMaintenanceTypes)
			protected.POST("/maintenance-types", api.CreateMaintenanceType)

			protected.POST("/maintenance", api.CreateMaintenance)

			reports := protected.Group("/reports")
			reports.GET("", api.GetReports)
			reports.GET("/export", api.ExportReports)
		}
	}

	return r
}

func corsMiddleware() gin.HandlerFunc {
	cfg := cors.DefaultConfig()

	allowed := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS"))
	if allowed != "" {
		origins := []string{}
		for _, o := range strings.Split(allowed, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.AllowOrigins = origins
	} else {
		cfg.AllowAllOrigins = true
	}

	cfg.AddAllowMethods("GET", "POST", "PUT", "DELETE", "OPTIONS")
	cfg.AddAllowHeaders("Origin", "Content-Type", "Authorization", "X-Request-ID")
	cfg.AddExposeHeaders("Content-Length", "Content-Disposition")
	cfg.AllowCredentials = allowed != ""

	return cors.New(cfg)
}
