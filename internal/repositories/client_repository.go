package repositories

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"fitclub_backend/internal/models"

	"gorm.io/gorm"
)

// ClientRepository defines the interface for client-related database operations.
type ClientRepository interface {
	CreateClient(tx *gorm.DB, client *models.Client) (int64, error)
	GetClientByID(id int64) (*models.Client, error)
	GetClientWithHistory(id int64) (*models.Client, error)
	SearchClientWithHistory(query string) (*models.Client, error)
	GetClients(page, pageSize int, searchTerm *string) ([]models.Client, int64, error)
	UpdateClient(tx *gorm.DB, client *models.Client) error
	DeactivateClient(tx *gorm.DB, id int64) error
	CountActiveClients() (int64, error)
}

type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new instance of ClientRepository.
func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepository{db: db}
}

// CreateClient inserts a new client. The tx executor may be the shared handle
// or an open transaction.
func (r *clientRepository) CreateClient(tx *gorm.DB, client *models.Client) (int64, error) {
	if client.RegisteredAt.IsZero() {
		client.RegisteredAt = time.Now()
	}
	client.IsActive = true

	if err := tx.Create(client).Error; err != nil {
		return 0, fmt.Errorf("%w: creating client: %v", ErrDatabaseError, err)
	}
	return client.ID, nil
}

// GetClientByID retrieves a client by their ID.
func (r *clientRepository) GetClientByID(id int64) (*models.Client, error) {
	var client models.Client
	if err := r.db.First(&client, "client_id = ?", id).Error; err != nil {
		if terr := translateError(err); terr == ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting client by ID %d: %v", ErrDatabaseError, id, err)
	}
	return &client, nil
}

// GetClientWithHistory retrieves a client with memberships (club joined,
// visits attached) and payments preloaded, for the client lookup page.
func (r *clientRepository) GetClientWithHistory(id int64) (*models.Client, error) {
	var client models.Client
	err := r.db.
		Preload("Memberships.Club").
		Preload("Memberships.Visits").
		Preload("Payments").
		First(&client, "client_id = ?", id).Error
	if err != nil {
		if terr := translateError(err); terr == ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting client history for ID %d: %v", ErrDatabaseError, id, err)
	}
	return &client, nil
}

// SearchClientWithHistory resolves a lookup query that is either a numeric
// client ID or a name fragment, returning the first match with full history.
func (r *clientRepository) SearchClientWithHistory(query string) (*models.Client, error) {
	query = strings.TrimSpace(query)
	if id, err := strconv.ParseInt(query, 10, 64); err == nil {
		return r.GetClientWithHistory(id)
	}

	var client models.Client
	err := r.db.
		Preload("Memberships.Club").
		Preload("Memberships.Visits").
		Preload("Payments").
		Where("LOWER(full_name) LIKE ?", "%"+strings.ToLower(query)+"%").
		Order("full_name ASC").
		First(&client).Error
	if err != nil {
		if terr := translateError(err); terr == ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: searching client %q: %v", ErrDatabaseError, query, err)
	}
	return &client, nil
}

// GetClients retrieves a page of clients with an optional name/phone search.
func (r *clientRepository) GetClients(page, pageSize int, searchTerm *string) ([]models.Client, int64, error) {
	clients := []models.Client{}
	var totalCount int64

	query := r.db.Model(&models.Client{})
	if searchTerm != nil && *searchTerm != "" {
		pattern := "%" + strings.ToLower(*searchTerm) + "%"
		query = query.Where("LOWER(full_name) LIKE ? OR phone LIKE ?", pattern, pattern)
	}

	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, fmt.Errorf("%w: counting clients: %v", ErrDatabaseError, err)
	}

	err := query.
		Order("full_name ASC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&clients).Error
	if err != nil {
		return nil, 0, fmt.Errorf("%w: querying clients: %v", ErrDatabaseError, err)
	}
	return clients, totalCount, nil
}

// UpdateClient updates an existing client.
func (r *clientRepository) UpdateClient(tx *gorm.DB, client *models.Client) error {
	result := tx.Model(&models.Client{}).
		Where("client_id = ?", client.ID).
		Updates(map[string]interface{}{
			"full_name": client.FullName,
			"phone":     client.Phone,
			"email":     client.Email,
			"age":       client.Age,
			"address":   client.Address,
		})
	if result.Error != nil {
		return fmt.Errorf("%w: updating client ID %d: %v", ErrDatabaseError, client.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeactivateClient soft-deletes a client; clients are never removed.
func (r *clientRepository) DeactivateClient(tx *gorm.DB, id int64) error {
	result := tx.Model(&models.Client{}).
		Where("client_id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return fmt.Errorf("%w: deactivating client ID %d: %v", ErrDatabaseError, id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountActiveClients returns the number of active clients for the dashboard.
func (r *clientRepository) CountActiveClients() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Client{}).Where("is_active = ?", true).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("%w: counting active clients: %v", ErrDatabaseError, err)
	}
	return count, nil
}
