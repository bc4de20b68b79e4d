package services

import (
	"fmt"
	"time"

	"fitclub_backend/internal/models"
	"fitclub_backend/internal/repositories"
	"fitclub_backend/pkg/utils"

	"gorm.io/gorm"
)

// Freeze fees by duration in months.
var freezeFees = map[int]float64{
	1: 100,
	2: 150,
	3: 200,
}

// PurchaseMembershipRequest is the payload for selling a membership.
type PurchaseMembershipRequest struct {
	ClientID      int64  `json:"client_id" binding:"required"`
	ClubID        int64  `json:"club_id" binding:"required"`
	SessionsCount int    `json:"sessions_count" binding:"required"`
	PaymentMethod string `json:"payment_method" binding:"required"`
}

// FreezeMembershipRequest is the payload for freezing a membership.
type FreezeMembershipRequest struct {
	Months        int    `json:"months" binding:"required"`
	PaymentMethod string `json:"payment_method" binding:"required"`
}

// MembershipService handles the membership lifecycle: sale, freeze and the
// expiry sweep.
type MembershipService struct {
	db             *gorm.DB
	membershipRepo repositories.MembershipRepository
	clientRepo     repositories.ClientRepository
	catalogRepo    repositories.CatalogRepository
	paymentRepo    repositories.PaymentRepository
}

// NewMembershipService creates a new MembershipService.
func NewMembershipService(
	db *gorm.DB,
	membershipRepo repositories.MembershipRepository,
	clientRepo repositories.ClientRepository,
	catalogRepo repositories.CatalogRepository,
	paymentRepo repositories.PaymentRepository,
) *MembershipService {
	return &MembershipService{
		db:             db,
		membershipRepo: membershipRepo,
		clientRepo:     clientRepo,
		catalogRepo:    catalogRepo,
		paymentRepo:    paymentRepo,
	}
}

// startOfDay truncates a timestamp to its calendar day.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Purchase sells a membership. The membership row and its payment are written
// in one transaction so the ledger never shows one without the other.
func (s *MembershipService) Purchase(req PurchaseMembershipRequest) (*models.Membership, error) {
	if !models.IsValidSessionsCount(req.SessionsCount) {
		return nil, fmt.Errorf("%w: sessions count must be one of %v", ErrValidation, models.SessionPackages)
	}
	if !models.IsValidPaymentMethod(req.PaymentMethod) {
		return nil, fmt.Errorf("%w: unknown payment method %q", ErrValidation, req.PaymentMethod)
	}

	client, err := s.clientRepo.GetClientByID(req.ClientID)
	if err != nil {
		return nil, err
	}
	if !client.IsActive {
		return nil, fmt.Errorf("%w: client %d is deactivated", repositories.ErrNotFound, client.ID)
	}
	club, err := s.catalogRepo.GetClubByID(req.ClubID)
	if err != nil {
		return nil, err
	}
	if !club.IsActive {
		return nil, fmt.Errorf("%w: club %q is no longer offered", repositories.ErrNotFound, club.Name)
	}

	price := club.PriceForSessions(req.SessionsCount)
	if price <= 0 {
		return nil, fmt.Errorf("%w: club %q has no price for %d sessions", ErrValidation, club.Name, req.SessionsCount)
	}

	start := startOfDay(time.Now())
	membership := &models.Membership{
		ClientID:          client.ID,
		ClubID:            club.ID,
		SessionsTotal:     req.SessionsCount,
		SessionsRemaining: req.SessionsCount,
		StartDate:         start,
		ExpiryDate:        start.AddDate(0, 1, 0),
		Status:            models.MembershipStatusActive,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		id, err := s.membershipRepo.CreateMembership(tx, membership)
		if err != nil {
			return err
		}
		membership.ID = id

		payment := &models.Payment{
			ClientID:     client.ID,
			MembershipID: &id,
			Amount:       price,
			Method:       req.PaymentMethod,
			Description:  fmt.Sprintf("Membership purchase: %s (%d sessions)", club.Name, req.SessionsCount),
		}
		_, err = s.paymentRepo.CreatePayment(tx, payment)
		return err
	})
	if err != nil {
		return nil, err
	}

	utils.LogInfo("Membership sold", map[string]interface{}{
		"membership_id": membership.ID,
		"client_id":     client.ID,
		"club_id":       club.ID,
		"sessions":      req.SessionsCount,
		"amount":        price,
	})
	return s.membershipRepo.GetMembershipByID(membership.ID)
}

// Freeze extends a membership's expiry by one to three months for a fixed fee.
// The extension and the fee payment are committed atomically.
func (s *MembershipService) Freeze(membershipID int64, req FreezeMembershipRequest) (*models.Membership, error) {
	fee, ok := freezeFees[req.Months]
	if !ok {
		return nil, fmt.Errorf("%w: freeze duration must be 1, 2 or 3 months", ErrValidation)
	}
	if !models.IsValidPaymentMethod(req.PaymentMethod) {
		return nil, fmt.Errorf("%w: unknown payment method %q", ErrValidation, req.PaymentMethod)
	}

	membership, err := s.membershipRepo.GetMembershipByID(membershipID)
	if err != nil {
		return nil, err
	}
	if membership.Status != models.MembershipStatusActive {
		return nil, fmt.Errorf("%w: only active memberships can be frozen", ErrValidation)
	}

	newExpiry := membership.ExpiryDate.AddDate(0, req.Months, 0)
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.membershipRepo.UpdateExpiryDate(tx, membershipID, newExpiry); err != nil {
			return err
		}
		payment := &models.Payment{
			ClientID:     membership.ClientID,
			MembershipID: &membership.ID,
			Amount:       fee,
			Method:       req.PaymentMethod,
			Description:  fmt.Sprintf("Freeze: %d month(s)", req.Months),
		}
		_, err := s.paymentRepo.CreatePayment(tx, payment)
		return err
	})
	if err != nil {
		return nil, err
	}

	utils.LogInfo("Membership frozen", map[string]interface{}{
		"membership_id": membershipID,
		"months":        req.Months,
		"fee":           fee,
	})
	return s.membershipRepo.GetMembershipByID(membershipID)
}

// ExpireSweep closes out every active membership that has run past its expiry
// date or out of sessions. It is idempotent and safe to run at every startup.
func (s *MembershipService) ExpireSweep() (int, error) {
	memberships, err := s.membershipRepo.GetActiveMemberships()
	if err != nil {
		return 0, err
	}

	today := startOfDay(time.Now())
	closed := 0
	for _, m := range memberships {
		// The driver hands timestamps back in UTC; normalize to local time so
		// the calendar-day comparison does not shift across the zone offset.
		expired := startOfDay(m.ExpiryDate.In(time.Local)).Before(today)
		if !expired && m.SessionsRemaining > 0 {
			continue
		}
		if err := s.membershipRepo.UpdateStatus(s.db, m.ID, models.MembershipStatusCompleted); err != nil {
			return closed, err
		}
		closed++
	}

	if closed > 0 {
		utils.LogInfo("Expiry sweep completed memberships", map[string]interface{}{"count": closed})
	}
	return closed, nil
}

// GetMembership returns one membership with client and club joined.
func (s *MembershipService) GetMembership(id int64) (*models.Membership, error) {
	return s.membershipRepo.GetMembershipByID(id)
}

// GetClientMemberships lists a client's active memberships.
func (s *MembershipService) GetClientMemberships(clientID int64) ([]models.Membership, error) {
	if _, err := s.clientRepo.GetClientByID(clientID); err != nil {
		return nil, err
	}
	return s.membershipRepo.GetActiveMembershipsByClient(clientID)
}
