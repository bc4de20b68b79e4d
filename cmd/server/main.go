package main

import (
	"fitclub_backend/internal/database"
	"fitclub_backend/internal/handlers"
	"fitclub_backend/internal/reports"
	"fitclub_backend/internal/repositories"
	"fitclub_backend/internal/router"
	"fitclub_backend/internal/services"
	"fitclub_backend/pkg/utils"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// Missing .env is fine; everything has a default.
	_ = godotenv.Load()

	utils.InitLogger()

	dbPath := utils.Getenv("DB_PATH", "data/fitclub.db")
	database.InitDB(dbPath)
	db := database.GetDB()

	clientRepo := repositories.NewClientRepository(db)
	catalogRepo := repositories.NewCatalogRepository(db)
	membershipRepo := repositories.NewMembershipRepository(db)
	visitRepo := repositories.NewVisitRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)
	authRepo := repositories.NewAuthRepository(db)

	exporter := reports.NewExporter(utils.Getenv("REPORTS_DIR", "reports"))

	authService := services.NewAuthService(db, authRepo)
	clientService := services.NewClientService(db, clientRepo)
	catalogService := services.NewCatalogService(db, catalogRepo)
	membershipService := services.NewMembershipService(db, membershipRepo, clientRepo, catalogRepo, paymentRepo)
	attendanceService := services.NewAttendanceService(db, membershipRepo, visitRepo)
	paymentService := services.NewPaymentService(db, paymentRepo, clientRepo)
	reportService := services.NewReportService(exporter, clientRepo, membershipRepo, visitRepo, paymentRepo)

	// Close out expired and exhausted memberships before taking traffic.
	if _, err := membershipService.ExpireSweep(); err != nil {
		log.Fatal().Err(err).Msg("Expiry sweep failed")
	}

	r := router.Setup(router.Handlers{
		Auth:       handlers.NewAuthHandler(authService),
		Client:     handlers.NewClientHandler(clientService),
		Catalog:    handlers.NewCatalogHandler(catalogService),
		Membership: handlers.NewMembershipHandler(membershipService),
		Attendance: handlers.NewAttendanceHandler(attendanceService),
		Payment:    handlers.NewPaymentHandler(paymentService),
		Report:     handlers.NewReportHandler(reportService),
	})

	port := utils.Getenv("PORT", "8080")
	log.Info().Str("port", port).Msg("Starting server")
	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}
