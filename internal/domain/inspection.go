package domain

import "time"

// Checklist vocabulary. Read-mostly: reports copy from these templates at
// write time and never mutate them.

type InspectionCategory struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description,omitempty"`
	OrderIndex  int       `json:"order_index"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

type InspectionItemTemplate struct {
	ID          int64     `json:"id"`
	CategoryID  int64     `json:"category_id"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description,omitempty"`
	OrderIndex  int       `json:"order_index"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

type OperationPointTemplate struct {
	ID              int64          `json:"id"`
	Name            string         `json:"name" validate:"required"`
	DisplayName     string         `json:"display_name"`
	FieldType       string         `json:"field_type"` // number, select, text
	Options         []string       `json:"options,omitempty" gorm:"serializer:json"`
	ValidationRules map[string]any `json:"validation_rules,omitempty" gorm:"serializer:json"`
	OrderIndex      int            `json:"order_index"`
	IsActive        bool           `json:"is_active"`
	CreatedAt       time.Time      `json:"created_at"`
}

// StatusOptions is the fixed inspection status vocabulary with its human labels.
func StatusOptions() map[string]string {
	return map[string]string{
		"OK":  "Funcionando correctamente",
		"N/A": "No aplica",
		"R":   "Requiere atención/reparación",
	}
}
