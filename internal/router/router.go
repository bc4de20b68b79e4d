// Package router wires the HTTP surface: middleware, CORS and the versioned
// route groups.
package router

import (
	"strings"
	"time"

	"fitclub_backend/internal/handlers"
	"fitclub_backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers bundles every handler the router mounts.
type Handlers struct {
	Auth       *handlers.AuthHandler
	Client     *handlers.ClientHandler
	Catalog    *handlers.CatalogHandler
	Membership *handlers.MembershipHandler
	Attendance *handlers.AttendanceHandler
	Payment    *handlers.PaymentHandler
	Report     *handlers.ReportHandler
}

// Setup builds the gin engine with logging, CORS and all route groups.
func Setup(h Handlers) *gin.Engine {
	gin.SetMode(utils.Getenv("GIN_MODE", gin.ReleaseMode))

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(utils.GinLogger())
	r.Use(corsMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	registerAuthRoutes(api, h.Auth)
	registerClientRoutes(api, h.Client, h.Membership)
	registerCatalogRoutes(api, h.Catalog)
	registerMembershipRoutes(api, h.Membership)
	registerAttendanceRoutes(api, h.Attendance)
	registerPaymentRoutes(api, h.Payment)
	registerReportRoutes(api, h.Report)

	return r
}

func corsMiddleware() gin.HandlerFunc {
	origins := strings.Split(utils.Getenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"), ",")
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
