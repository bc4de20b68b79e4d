package models

import "time"

// Membership statuses. Transitions only move forward (active -> completed);
// a freeze extends the expiry date but keeps the membership active.
const (
	MembershipStatusActive    = "active"
	MembershipStatusCompleted = "completed"
)

// Supported session package sizes.
var SessionPackages = []int{8, 12}

// IsValidSessionsCount reports whether the given count is a purchasable package.
func IsValidSessionsCount(sessions int) bool {
	for _, n := range SessionPackages {
		if sessions == n {
			return true
		}
	}
	return false
}

// Membership represents a client's paid enrollment in a club offering for a
// fixed session count and a one-month expiry window.
type Membership struct {
	ID                int64     `json:"id" gorm:"column:membership_id;primaryKey"`
	ClientID          int64     `json:"client_id" gorm:"column:client_id;not null"`
	ClubID            int64     `json:"club_id" gorm:"column:club_id;not null"`
	SessionsTotal     int       `json:"sessions_total" gorm:"column:sessions_total;not null"`
	SessionsRemaining int       `json:"sessions_remaining" gorm:"column:sessions_remaining;not null"`
	StartDate         time.Time `json:"start_date" gorm:"column:start_date;not null"`
	ExpiryDate        time.Time `json:"expiry_date" gorm:"column:expiry_date"`
	Status            string    `json:"status" gorm:"column:status;default:active"`

	Client *Client `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	Club   *Club   `json:"club,omitempty" gorm:"foreignKey:ClubID"`
	Visits []Visit `json:"visits,omitempty" gorm:"foreignKey:MembershipID"`
}

func (Membership) TableName() string { return "memberships" }
