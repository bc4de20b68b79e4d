package services

import (
	"fmt"

	"fitclub_backend/internal/models"
	"fitclub_backend/internal/repositories"
	"fitclub_backend/pkg/utils"

	"gorm.io/gorm"
)

// RecordPaymentRequest is the payload for a custom front-desk charge that is
// not tied to a membership sale (personal training, merchandise and so on).
type RecordPaymentRequest struct {
	ClientID    int64   `json:"client_id" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Method      string  `json:"payment_method" binding:"required"`
	Description string  `json:"description" binding:"required"`
}

// PaymentListResult is the payments page: the filtered rows plus aggregates.
type PaymentListResult struct {
	Payments    []models.Payment `json:"payments"`
	TotalAmount float64          `json:"total_amount"`
	Count       int              `json:"count"`
}

// PaymentService handles the append-only payment ledger.
type PaymentService struct {
	db          *gorm.DB
	paymentRepo repositories.PaymentRepository
	clientRepo  repositories.ClientRepository
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(db *gorm.DB, paymentRepo repositories.PaymentRepository, clientRepo repositories.ClientRepository) *PaymentService {
	return &PaymentService{db: db, paymentRepo: paymentRepo, clientRepo: clientRepo}
}

// RecordCustomCharge writes a standalone payment for an existing client.
func (s *PaymentService) RecordCustomCharge(req RecordPaymentRequest) (*models.Payment, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if !models.IsValidPaymentMethod(req.Method) {
		return nil, fmt.Errorf("%w: unknown payment method %q", ErrValidation, req.Method)
	}
	if utils.IsEmpty(req.Description) {
		return nil, fmt.Errorf("%w: description is required", ErrValidation)
	}

	client, err := s.clientRepo.GetClientByID(req.ClientID)
	if err != nil {
		return nil, err
	}

	payment := &models.Payment{
		ClientID:    client.ID,
		Amount:      req.Amount,
		Method:      req.Method,
		Description: req.Description,
	}
	id, err := s.paymentRepo.CreatePayment(s.db, payment)
	if err != nil {
		return nil, err
	}
	payment.ID = id

	utils.LogInfo("Payment recorded", map[string]interface{}{
		"payment_id": id,
		"client_id":  client.ID,
		"amount":     req.Amount,
		"method":     req.Method,
	})
	return payment, nil
}

// GetPayments lists payments matching the filters together with their sum.
func (s *PaymentService) GetPayments(filters models.PaymentFilters) (*PaymentListResult, error) {
	if filters.Method != "" && !models.IsValidPaymentMethod(filters.Method) {
		return nil, fmt.Errorf("%w: unknown payment method %q", ErrValidation, filters.Method)
	}

	payments, err := s.paymentRepo.GetPayments(filters)
	if err != nil {
		return nil, err
	}

	var total float64
	for _, p := range payments {
		total += p.Amount
	}
	return &PaymentListResult{Payments: payments, TotalAmount: total, Count: len(payments)}, nil
}
