package domain

import "time"

type EquipmentType string

const (
	EquipmentCombustion EquipmentType = "Combustión"
	EquipmentElectrico  EquipmentType = "Eléctrico"
	EquipmentManual     EquipmentType = "Manual"
	EquipmentOtro       EquipmentType = "Otro"
)

// EquipmentTypes lists the accepted values for Equipment.Type, in display order.
func EquipmentTypes() []string {
	return []string{
		string(EquipmentCombustion),
		string(EquipmentElectrico),
		string(EquipmentManual),
		string(EquipmentOtro),
	}
}

func ValidEquipmentType(t string) bool {
	switch EquipmentType(t) {
	case EquipmentCombustion, EquipmentElectrico, EquipmentManual, EquipmentOtro:
		return true
	}
	return false
}

type Equipment struct {
	ID           int64      `json:"id"`
	Type         string     `json:"type" validate:"required"`
	Brand        string     `json:"brand" validate:"required"`
	Model        string     `json:"model" validate:"required"`
	SerialNumber string     `json:"serial_number" validate:"required" gorm:"uniqueIndex"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}
