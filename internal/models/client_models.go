package models

import "time"

// Client represents a registered member of the fitness center.
type Client struct {
	ID           int64     `json:"id" gorm:"column:client_id;primaryKey"`
	FullName     string    `json:"full_name" gorm:"column:full_name;not null"`
	Phone        string    `json:"phone" gorm:"column:phone;not null"`
	Email        *string   `json:"email,omitempty" gorm:"column:email"`
	Age          *int      `json:"age,omitempty" gorm:"column:age"`
	Address      *string   `json:"address,omitempty" gorm:"column:address"`
	RegisteredAt time.Time `json:"registered_at" gorm:"column:registered_at"`
	IsActive     bool      `json:"is_active" gorm:"column:is_active;default:true"`

	Memberships []Membership `json:"memberships,omitempty" gorm:"foreignKey:ClientID"`
	Payments    []Payment    `json:"payments,omitempty" gorm:"foreignKey:ClientID"`
}

// TableName overrides the default gorm table name.
func (Client) TableName() string { return "clients" }
