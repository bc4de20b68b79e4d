package router

import (
	"fitclub_backend/internal/handlers"
	"fitclub_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func registerAuthRoutes(api *gin.RouterGroup, h *handlers.AuthHandler) {
	auth := api.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)
	}

	protected := api.Group("/auth")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/me", h.Me)
		protected.POST("/logout", h.Logout)
	}
}

func registerClientRoutes(api *gin.RouterGroup, h *handlers.ClientHandler, mh *handlers.MembershipHandler) {
	clients := api.Group("/clients")
	clients.Use(middleware.AuthMiddleware())
	{
		clients.POST("", h.CreateClient)
		clients.GET("", h.ListClients)
		clients.GET("/lookup", h.LookupClient)
		clients.GET("/:id", h.GetClient)
		clients.PUT("/:id", h.UpdateClient)
		clients.DELETE("/:id", h.DeactivateClient)
		clients.GET("/:id/memberships", mh.GetClientMemberships)
	}
}

func registerCatalogRoutes(api *gin.RouterGroup, h *handlers.CatalogHandler) {
	clubs := api.Group("/clubs")
	clubs.Use(middleware.AuthMiddleware())
	{
		clubs.POST("", h.CreateClub)
		clubs.GET("", h.ListClubs)
		clubs.GET("/:id", h.GetClub)
		clubs.PUT("/:id", h.UpdateClub)
		clubs.DELETE("/:id", h.DeactivateClub)
	}

	trainers := api.Group("/trainers")
	trainers.Use(middleware.AuthMiddleware())
	{
		trainers.POST("", h.CreateTrainer)
		trainers.GET("", h.ListTrainers)
	}

	rooms := api.Group("/rooms")
	rooms.Use(middleware.AuthMiddleware())
	{
		rooms.POST("", h.CreateRoom)
		rooms.GET("", h.ListRooms)
	}
}

func registerMembershipRoutes(api *gin.RouterGroup, h *handlers.MembershipHandler) {
	memberships := api.Group("/memberships")
	memberships.Use(middleware.AuthMiddleware())
	{
		memberships.POST("", h.Purchase)
		memberships.GET("/:id", h.GetMembership)
		memberships.POST("/:id/freeze", h.Freeze)
	}
}

func registerAttendanceRoutes(api *gin.RouterGroup, h *handlers.AttendanceHandler) {
	attendance := api.Group("/attendance")
	attendance.Use(middleware.AuthMiddleware())
	{
		attendance.POST("/check-in", h.CheckIn)
		attendance.POST("/:id/check-out", h.CheckOut)
		attendance.PUT("/:id/notes", h.UpdateNotes)
		attendance.GET("/search", h.Search)
	}

	visits := api.Group("/visits")
	visits.Use(middleware.AuthMiddleware())
	{
		visits.GET("", h.ListVisits)
	}
}

func registerPaymentRoutes(api *gin.RouterGroup, h *handlers.PaymentHandler) {
	payments := api.Group("/payments")
	payments.Use(middleware.AuthMiddleware())
	{
		payments.POST("", h.RecordPayment)
		payments.GET("", h.ListPayments)
	}
}

func registerReportRoutes(api *gin.RouterGroup, h *handlers.ReportHandler) {
	api.GET("/dashboard", middleware.AuthMiddleware(), h.Dashboard)

	reports := api.Group("/reports")
	reports.Use(middleware.AuthMiddleware())
	{
		reports.POST("/payments/day", h.ExportPaymentsDay)
		reports.POST("/payments/month", h.ExportPaymentsMonth)
		reports.POST("/visits/day", h.ExportVisitsDay)
	}
}
