package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the HTTP surface. All invoice routes live under /api.
func NewRouter(h *InvoicesHandler, allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(allowedOrigins) == 1 && allowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = allowedOrigins
	}
	corsCfg.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	corsCfg.MaxAge = 12 * time.Hour
	r.Use(cors.New(corsCfg))

	r.GET("/healthz", h.Health)

	api := r.Group("/api")
	{
		api.POST("/invoices/process", h.ProcessUpload)
		api.GET("/invoices", h.List)
		api.GET("/invoices/export", h.Export)
		api.GET("/invoices/:id", h.Get)
		api.GET("/invoices/:id/items", h.ListItems)
		api.PATCH("/invoices/:id/status", h.UpdateStatus)
		api.DELETE("/invoices/:id", h.Delete)
	}
	return r
}
