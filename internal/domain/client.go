package domain

import "time"

type Client struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name" validate:"required"`
	Address   string     `json:"address" validate:"required"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`

	Contacts []Contact `json:"contacts,omitempty" gorm:"foreignKey:ClientID"`
}

// Contact belongs to exactly one client. Reports that cite a contact must
// reference the same client the contact belongs to.
type Contact struct {
	ID        int64     `json:"id"`
	ClientID  int64     `json:"client_id"`
	Name      string    `json:"name" validate:"required"`
	Position  string    `json:"position,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
