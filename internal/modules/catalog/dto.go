package catalog

type CreateClientRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
}

type UpdateClientRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
}

type CreateContactRequest struct {
	Name     string `json:"name" binding:"required"`
	Position string `json:"position"`
	Phone    string `json:"phone"`
	Email    string `json:"email" binding:"omitempty,email"`
}

type CreateEquipmentRequest struct {
	Type         string `json:"type" binding:"required"`
	Brand        string `json:"brand" binding:"required"`
	Model        string `json:"model" binding:"required"`
	SerialNumber string `json:"serial_number" binding:"required"`
}

type UpdateEquipmentRequest struct {
	Type         *string `json:"type"`
	Brand        *string `json:"brand"`
	Model        *string `json:"model"`
	SerialNumber *string `json:"serial_number"`
}

type ListQuery struct {
	Skip  int `form:"skip"`
	Limit int `form:"limit"`
}

type ListEquipmentQuery struct {
	Type  string `form:"type"`
	Skip  int    `form:"skip"`
	Limit int    `form:"limit"`
}
