package users

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required"`
	Position string `json:"position"`
}

// UpdateUserRequest uses pointers so omitted fields are left untouched.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=6"`
	Role     *string `json:"role"`
	Position *string `json:"position"`
	Avatar   *string `json:"avatar"`
	IsActive *bool   `json:"is_active"`
}

type ListUsersQuery struct {
	Skip  int `form:"skip"`
	Limit int `form:"limit"`
}
