package models

import "time"

// Trainer represents a coach who can be assigned to a club section.
type Trainer struct {
	ID             int64      `json:"id" gorm:"column:trainer_id;primaryKey"`
	FullName       string     `json:"full_name" gorm:"column:full_name;not null"`
	Phone          string     `json:"phone" gorm:"column:phone;not null"`
	Email          *string    `json:"email,omitempty" gorm:"column:email"`
	Specialization *string    `json:"specialization,omitempty" gorm:"column:specialization"`
	HireDate       *time.Time `json:"hire_date,omitempty" gorm:"column:hire_date"`
	IsActive       bool       `json:"is_active" gorm:"column:is_active;default:true"`
}

func (Trainer) TableName() string { return "trainers" }

// Room statuses used by the catalog.
const (
	RoomStatusFree     = "free"
	RoomStatusOccupied = "occupied"
)

// Room represents a training hall. Room numbers are unique.
type Room struct {
	ID          int64    `json:"id" gorm:"column:room_id;primaryKey"`
	RoomNumber  string   `json:"room_number" gorm:"column:room_number;not null;uniqueIndex"`
	Name        string   `json:"name" gorm:"column:name;not null"`
	Area        *float64 `json:"area,omitempty" gorm:"column:area"`
	Capacity    *int     `json:"capacity,omitempty" gorm:"column:capacity"`
	Status      string   `json:"status" gorm:"column:status;default:free"`
	Description *string  `json:"description,omitempty" gorm:"column:description"`
}

func (Room) TableName() string { return "rooms" }

// Club represents a purchasable section offering with two fixed price tiers.
type Club struct {
	ID              int64   `json:"id" gorm:"column:club_id;primaryKey"`
	Name            string  `json:"name" gorm:"column:name;not null"`
	Description     *string `json:"description,omitempty" gorm:"column:description"`
	TrainerID       *int64  `json:"trainer_id,omitempty" gorm:"column:trainer_id"`
	RoomID          *int64  `json:"room_id,omitempty" gorm:"column:room_id"`
	Schedule        *string `json:"schedule,omitempty" gorm:"column:schedule"`
	Price8Sessions  float64 `json:"price_8_sessions" gorm:"column:price8sessions;not null"`
	Price12Sessions float64 `json:"price_12_sessions" gorm:"column:price12sessions;not null"`
	IsActive        bool    `json:"is_active" gorm:"column:is_active;default:true"`

	Trainer *Trainer `json:"trainer,omitempty" gorm:"foreignKey:TrainerID"`
	Room    *Room    `json:"room,omitempty" gorm:"foreignKey:RoomID"`
}

func (Club) TableName() string { return "clubs" }

// PriceForSessions returns the club price for the given session count.
// Returns 0 for counts outside the two supported tiers.
func (c *Club) PriceForSessions(sessions int) float64 {
	switch sessions {
	case 8:
		return c.Price8Sessions
	case 12:
		return c.Price12Sessions
	default:
		return 0
	}
}
