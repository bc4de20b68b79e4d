package repositories

import (
	"fmt"
	"strings"
	"time"

	"fitclub_backend/internal/models"

	"gorm.io/gorm"
)

// PaymentRepository defines the interface for the append-only payment ledger.
// There is deliberately no update or delete operation.
type PaymentRepository interface {
	CreatePayment(tx *gorm.DB, payment *models.Payment) (int64, error)
	GetPayments(filters models.PaymentFilters) ([]models.Payment, error)
	GetPaymentsInRange(start, end time.Time) ([]models.Payment, error)
	SumPaymentsOnDay(day time.Time) (float64, error)
}

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new instance of PaymentRepository.
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) CreatePayment(tx *gorm.DB, payment *models.Payment) (int64, error) {
	if payment.PaymentDate.IsZero() {
		payment.PaymentDate = time.Now()
	}
	if err := tx.Create(payment).Error; err != nil {
		return 0, fmt.Errorf("%w: creating payment: %v", ErrDatabaseError, err)
	}
	return payment.ID, nil
}

// GetPayments lists payments newest first with the client and membership club
// joined, applying the optional AND-combined filters.
func (r *paymentRepository) GetPayments(filters models.PaymentFilters) ([]models.Payment, error) {
	payments := []models.Payment{}
	query := r.db.
		Preload("Client").
		Preload("Membership.Club").
		Joins("JOIN clients ON clients.client_id = payments.client_id")

	if filters.Method != "" {
		query = query.Where("payments.payment_method = ?", filters.Method)
	}
	if filters.Date != "" {
		day, err := time.ParseInLocation("2006-01-02", filters.Date, time.Local)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date filter %q: %v", ErrDatabaseError, filters.Date, err)
		}
		start, end := dayRange(day)
		query = query.Where("payments.payment_date >= ? AND payments.payment_date < ?", start, end)
	}
	if filters.Search != "" {
		pattern := "%" + strings.ToLower(filters.Search) + "%"
		query = query.Where(
			"LOWER(clients.full_name) LIKE ? OR clients.phone LIKE ? OR CAST(clients.client_id AS TEXT) LIKE ? OR LOWER(payments.description) LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	if err := query.Order("payments.payment_date DESC").Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("%w: querying payments: %v", ErrDatabaseError, err)
	}
	return payments, nil
}

// GetPaymentsInRange lists payments in the half-open [start, end) interval in
// chronological order, with the client joined. Used by the report exports.
func (r *paymentRepository) GetPaymentsInRange(start, end time.Time) ([]models.Payment, error) {
	payments := []models.Payment{}
	err := r.db.
		Preload("Client").
		Where("payment_date >= ? AND payment_date < ?", start, end).
		Order("payment_date ASC").
		Find(&payments).Error
	if err != nil {
		return nil, fmt.Errorf("%w: querying payments in range: %v", ErrDatabaseError, err)
	}
	return payments, nil
}

// SumPaymentsOnDay totals the day's takings for the dashboard.
func (r *paymentRepository) SumPaymentsOnDay(day time.Time) (float64, error) {
	start, end := dayRange(day)
	var total float64
	err := r.db.Model(&models.Payment{}).
		Where("payment_date >= ? AND payment_date < ?", start, end).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("%w: summing payments: %v", ErrDatabaseError, err)
	}
	return total, nil
}
