package services

import (
	"path/filepath"
	"testing"

	"fitclub_backend/internal/models"
	"fitclub_backend/internal/repositories"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv wires every service over a throwaway sqlite file.
type testEnv struct {
	db             *gorm.DB
	clientRepo     repositories.ClientRepository
	membershipRepo repositories.MembershipRepository
	visitRepo      repositories.VisitRepository
	paymentRepo    repositories.PaymentRepository

	auth       *AuthService
	clients    *ClientService
	catalog    *CatalogService
	membership *MembershipService
	attendance *AttendanceService
	payments   *PaymentService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Trainer{},
		&models.Room{},
		&models.Club{},
		&models.Client{},
		&models.Membership{},
		&models.Visit{},
		&models.Payment{},
	)
	require.NoError(t, err)

	clientRepo := repositories.NewClientRepository(db)
	catalogRepo := repositories.NewCatalogRepository(db)
	membershipRepo := repositories.NewMembershipRepository(db)
	visitRepo := repositories.NewVisitRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)
	authRepo := repositories.NewAuthRepository(db)

	return &testEnv{
		db:             db,
		clientRepo:     clientRepo,
		membershipRepo: membershipRepo,
		visitRepo:      visitRepo,
		paymentRepo:    paymentRepo,
		auth:           NewAuthService(db, authRepo),
		clients:        NewClientService(db, clientRepo),
		catalog:        NewCatalogService(db, catalogRepo),
		membership:     NewMembershipService(db, membershipRepo, clientRepo, catalogRepo, paymentRepo),
		attendance:     NewAttendanceService(db, membershipRepo, visitRepo),
		payments:       NewPaymentService(db, paymentRepo, clientRepo),
	}
}

func (e *testEnv) createClient(t *testing.T, name string) *models.Client {
	t.Helper()
	client, err := e.clients.RegisterClient(CreateClientRequest{
		FullName: name,
		Phone:    "+380501234567",
	})
	require.NoError(t, err)
	return client
}

func (e *testEnv) createClub(t *testing.T, name string, price8, price12 float64) *models.Club {
	t.Helper()
	club, err := e.catalog.CreateClub(CreateClubRequest{
		Name:            name,
		Price8Sessions:  price8,
		Price12Sessions: price12,
	})
	require.NoError(t, err)
	return club
}

func (e *testEnv) purchase(t *testing.T, clientID, clubID int64, sessions int) *models.Membership {
	t.Helper()
	membership, err := e.membership.Purchase(PurchaseMembershipRequest{
		ClientID:      clientID,
		ClubID:        clubID,
		SessionsCount: sessions,
		PaymentMethod: models.PaymentMethodCash,
	})
	require.NoError(t, err)
	return membership
}
