package inspection

import "errors"

var (
	ErrCategoryNotFound  = errors.New("inspection category not found")
	ErrDuplicateCategory = errors.New("inspection category already exists")
	ErrForbidden         = errors.New("insufficient permissions")
	ErrInvalidFieldType  = errors.New("invalid field type")
)
