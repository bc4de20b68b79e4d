package models

import "time"

// User is a front-desk operator account. Operators authenticate at login and
// carry no authorization scoping beyond that.
type User struct {
	ID           int64     `json:"id" gorm:"column:user_id;primaryKey"`
	Username     string    `json:"username" gorm:"column:username;not null;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"column:passwordh;not null"`
	FullName     string    `json:"full_name" gorm:"column:full_name;not null"`
	Phone        string    `json:"phone" gorm:"column:phone;not null"`
	Email        string    `json:"email" gorm:"column:email;not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at"`
}

func (User) TableName() string { return "users" }
