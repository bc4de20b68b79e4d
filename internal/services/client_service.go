package services

import (
	"errors"
	"fmt"

	"fitclub_backend/internal/models"
	"fitclub_backend/internal/repositories"
	"fitclub_backend/pkg/utils"

	"gorm.io/gorm"
)

// ErrValidation marks input rejected by business rules. Services across the
// package wrap it with the specific reason.
var ErrValidation = errors.New("validation failed")

// CreateClientRequest is the payload for registering a client.
type CreateClientRequest struct {
	FullName string  `json:"full_name" binding:"required"`
	Phone    string  `json:"phone" binding:"required"`
	Email    *string `json:"email,omitempty"`
	Age      *int    `json:"age,omitempty"`
	Address  *string `json:"address,omitempty"`
}

// UpdateClientRequest is the payload for editing a client's card.
type UpdateClientRequest struct {
	FullName string  `json:"full_name" binding:"required"`
	Phone    string  `json:"phone" binding:"required"`
	Email    *string `json:"email,omitempty"`
	Age      *int    `json:"age,omitempty"`
	Address  *string `json:"address,omitempty"`
}

// ClientListResult is one page of the client list.
type ClientListResult struct {
	Clients    []models.Client `json:"clients"`
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
}

// ClientService handles client registration and lookup.
type ClientService struct {
	db         *gorm.DB
	clientRepo repositories.ClientRepository
}

// NewClientService creates a new ClientService.
func NewClientService(db *gorm.DB, clientRepo repositories.ClientRepository) *ClientService {
	return &ClientService{db: db, clientRepo: clientRepo}
}

func validateClientFields(fullName, phone string, age *int) error {
	if utils.IsEmpty(fullName) {
		return fmt.Errorf("%w: full name is required", ErrValidation)
	}
	if !utils.IsValidPhone(phone) {
		return fmt.Errorf("%w: phone must start with +380 and hold a full number", ErrValidation)
	}
	if age != nil && (*age < 1 || *age > 120) {
		return fmt.Errorf("%w: age must be between 1 and 120", ErrValidation)
	}
	return nil
}

// RegisterClient creates a new client card.
func (s *ClientService) RegisterClient(req CreateClientRequest) (*models.Client, error) {
	if err := validateClientFields(req.FullName, req.Phone, req.Age); err != nil {
		return nil, err
	}
	if req.Email != nil && *req.Email != "" && !utils.IsValidEmail(*req.Email) {
		return nil, fmt.Errorf("%w: invalid email format", ErrValidation)
	}

	client := &models.Client{
		FullName: req.FullName,
		Phone:    req.Phone,
		Email:    req.Email,
		Age:      req.Age,
		Address:  req.Address,
	}

	id, err := s.clientRepo.CreateClient(s.db, client)
	if err != nil {
		return nil, err
	}
	client.ID = id

	utils.LogInfo("Client registered", map[string]interface{}{"client_id": id, "full_name": client.FullName})
	return client, nil
}

// GetClientDetails returns a client with membership and payment history.
func (s *ClientService) GetClientDetails(id int64) (*models.Client, error) {
	return s.clientRepo.GetClientWithHistory(id)
}

// LookupClient resolves a free-form query (ID or name fragment) to a client
// with full history, for the lookup page.
func (s *ClientService) LookupClient(query string) (*models.Client, error) {
	if utils.IsEmpty(query) {
		return nil, fmt.Errorf("%w: lookup query is required", ErrValidation)
	}
	return s.clientRepo.SearchClientWithHistory(query)
}

// ListClients returns one page of clients, optionally filtered by name/phone.
func (s *ClientService) ListClients(page, pageSize int, searchTerm *string) (*ClientListResult, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	clients, total, err := s.clientRepo.GetClients(page, pageSize, searchTerm)
	if err != nil {
		return nil, err
	}
	return &ClientListResult{Clients: clients, TotalCount: total, Page: page, PageSize: pageSize}, nil
}

// UpdateClient edits a client card.
func (s *ClientService) UpdateClient(id int64, req UpdateClientRequest) (*models.Client, error) {
	if err := validateClientFields(req.FullName, req.Phone, req.Age); err != nil {
		return nil, err
	}

	client := &models.Client{
		ID:       id,
		FullName: req.FullName,
		Phone:    req.Phone,
		Email:    req.Email,
		Age:      req.Age,
		Address:  req.Address,
	}
	if err := s.clientRepo.UpdateClient(s.db, client); err != nil {
		return nil, err
	}
	return s.clientRepo.GetClientByID(id)
}

// DeactivateClient soft-deletes a client.
func (s *ClientService) DeactivateClient(id int64) error {
	if err := s.clientRepo.DeactivateClient(s.db, id); err != nil {
		return err
	}
	utils.LogInfo("Client deactivated", map[string]interface{}{"client_id": id})
	return nil
}
