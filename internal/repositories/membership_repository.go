package repositories

import (
	"fmt"
	"time"

	"fitclub_backend/internal/models"

	"gorm.io/gorm"
)

// MembershipRepository defines the interface for membership ledger storage.
type MembershipRepository interface {
	CreateMembership(tx *gorm.DB, membership *models.Membership) (int64, error)
	GetMembershipByID(id int64) (*models.Membership, error)
	GetActiveMembershipsByClient(clientID int64) ([]models.Membership, error)
	GetActiveMemberships() ([]models.Membership, error)
	SearchActiveMemberships(clientID *int64, nameSearch *string) ([]models.Membership, error)
	UpdateSessionsRemaining(tx *gorm.DB, id int64, delta int) error
	UpdateExpiryDate(tx *gorm.DB, id int64, expiry time.Time) error
	UpdateStatus(tx *gorm.DB, id int64, status string) error
	CountActiveMemberships() (int64, error)
}

type membershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new instance of MembershipRepository.
func NewMembershipRepository(db *gorm.DB) MembershipRepository {
	return &membershipRepository{db: db}
}

func (r *membershipRepository) CreateMembership(tx *gorm.DB, membership *models.Membership) (int64, error) {
	if err := tx.Create(membership).Error; err != nil {
		return 0, fmt.Errorf("%w: creating membership: %v", ErrDatabaseError, err)
	}
	return membership.ID, nil
}

// GetMembershipByID retrieves a membership with its client and club joined.
func (r *membershipRepository) GetMembershipByID(id int64) (*models.Membership, error) {
	var membership models.Membership
	err := r.db.Preload("Client").Preload("Club").First(&membership, "membership_id = ?", id).Error
	if err != nil {
		if terr := translateError(err); terr == ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting membership by ID %d: %v", ErrDatabaseError, id, err)
	}
	return &membership, nil
}

// GetActiveMembershipsByClient lists a client's active memberships, newest first.
func (r *membershipRepository) GetActiveMembershipsByClient(clientID int64) ([]models.Membership, error) {
	memberships := []models.Membership{}
	err := r.db.Preload("Club").
		Where("client_id = ? AND status = ?", clientID, models.MembershipStatusActive).
		Order("start_date DESC").
		Find(&memberships).Error
	if err != nil {
		return nil, fmt.Errorf("%w: querying memberships for client %d: %v", ErrDatabaseError, clientID, err)
	}
	return memberships, nil
}

// GetActiveMemberships lists every active membership, for the expiry sweep.
func (r *membershipRepository) GetActiveMemberships() ([]models.Membership, error) {
	memberships := []models.Membership{}
	err := r.db.Where("status = ?", models.MembershipStatusActive).Find(&memberships).Error
	if err != nil {
		return nil, fmt.Errorf("%w: querying active memberships: %v", ErrDatabaseError, err)
	}
	return memberships, nil
}

// SearchActiveMemberships finds active memberships for the attendance page,
// by exact client ID or by a client-name substring.
func (r *membershipRepository) SearchActiveMemberships(clientID *int64, nameSearch *string) ([]models.Membership, error) {
	memberships := []models.Membership{}
	query := r.db.Preload("Client").Preload("Club").
		Where("status = ?", models.MembershipStatusActive)

	switch {
	case clientID != nil:
		query = query.Where("client_id = ?", *clientID)
	case nameSearch != nil && *nameSearch != "":
		query = query.
			Joins("JOIN clients ON clients.client_id = memberships.client_id").
			Where("LOWER(clients.full_name) LIKE ?", "%"+*nameSearch+"%")
	}

	if err := query.Find(&memberships).Error; err != nil {
		return nil, fmt.Errorf("%w: searching active memberships: %v", ErrDatabaseError, err)
	}
	return memberships, nil
}

// UpdateSessionsRemaining applies a +1/-1 adjustment to the session counter.
func (r *membershipRepository) UpdateSessionsRemaining(tx *gorm.DB, id int64, delta int) error {
	result := tx.Model(&models.Membership{}).
		Where("membership_id = ?", id).
		Update("sessions_remaining", gorm.Expr("sessions_remaining + ?", delta))
	if result.Error != nil {
		return fmt.Errorf("%w: adjusting sessions for membership %d: %v", ErrDatabaseError, id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *membershipRepository) UpdateExpiryDate(tx *gorm.DB, id int64, expiry time.Time) error {
	result := tx.Model(&models.Membership{}).
		Where("membership_id = ?", id).
		Update("expiry_date", expiry)
	if result.Error != nil {
		return fmt.Errorf("%w: updating expiry for membership %d: %v", ErrDatabaseError, id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *membershipRepository) UpdateStatus(tx *gorm.DB, id int64, status string) error {
	result := tx.Model(&models.Membership{}).
		Where("membership_id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("%w: updating status for membership %d: %v", ErrDatabaseError, id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountActiveMemberships returns the active membership count for the dashboard.
func (r *membershipRepository) CountActiveMemberships() (int64, error) {
	var count int64
	err := r.db.Model(&models.Membership{}).
		Where("status = ?", models.MembershipStatusActive).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("%w: counting active memberships: %v", ErrDatabaseError, err)
	}
	return count, nil
}
