package models

import "time"

// Visit represents one attendance check-in. At most one visit exists per
// membership per calendar day; the check-in logic enforces this, not the schema.
type Visit struct {
	ID           int64     `json:"id" gorm:"column:visit_id;primaryKey"`
	MembershipID int64     `json:"membership_id" gorm:"column:membership_id;not null"`
	VisitDate    time.Time `json:"visit_date" gorm:"column:visit_date;not null"`
	Notes        string    `json:"notes" gorm:"column:notes"`

	Membership *Membership `json:"membership,omitempty" gorm:"foreignKey:MembershipID"`
}

func (Visit) TableName() string { return "visits" }
