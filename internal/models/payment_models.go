package models

import "time"

// Payment methods accepted at the front desk.
const (
	PaymentMethodCash     = "cash"
	PaymentMethodCard     = "card"
	PaymentMethodTransfer = "transfer"
)

// PaymentMethods lists every accepted method, in display order.
var PaymentMethods = []string{PaymentMethodCash, PaymentMethodCard, PaymentMethodTransfer}

// IsValidPaymentMethod reports whether the given method is accepted.
func IsValidPaymentMethod(method string) bool {
	for _, m := range PaymentMethods {
		if method == m {
			return true
		}
	}
	return false
}

// Payment is an append-only record of money received. Payments are never
// edited or deleted.
type Payment struct {
	ID           int64     `json:"id" gorm:"column:payment_id;primaryKey"`
	ClientID     int64     `json:"client_id" gorm:"column:client_id;not null"`
	MembershipID *int64    `json:"membership_id,omitempty" gorm:"column:membership_id"`
	Amount       float64   `json:"amount" gorm:"column:amount;not null"`
	PaymentDate  time.Time `json:"payment_date" gorm:"column:payment_date;not null"`
	Method       string    `json:"payment_method" gorm:"column:payment_method;not null"`
	Description  string    `json:"description" gorm:"column:description;not null"`

	Client     *Client     `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	Membership *Membership `json:"membership,omitempty" gorm:"foreignKey:MembershipID"`
}

func (Payment) TableName() string { return "payments" }
