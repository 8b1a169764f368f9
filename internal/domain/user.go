package domain

import "time"

type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleJefe     UserRole = "jefe"
	RoleOperador UserRole = "operador"
)

// ValidRole reports whether r is one of the three known roles.
func ValidRole(r string) bool {
	switch UserRole(r) {
	case RoleAdmin, RoleJefe, RoleOperador:
		return true
	}
	return false
}

type User struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name" validate:"required"`
	Email        string     `json:"email" validate:"required,email"`
	PasswordHash string     `json:"-"`
	Role         UserRole   `json:"role"`
	Position     string     `json:"position,omitempty"`
	Avatar       string     `json:"avatar,omitempty"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}
