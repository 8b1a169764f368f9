package catalog

import "errors"

var (
	ErrClientNotFound       = errors.New("client not found")
	ErrEquipmentNotFound    = errors.New("equipment not found")
	ErrDuplicateSerial      = errors.New("serial number already registered")
	ErrInvalidEquipmentType = errors.New("invalid equipment type")
	ErrForbidden            = errors.New("insufficient permissions")
	ErrValidation           = errors.New("invalid payload")
)

// ValidationError carries the per-field failures behind ErrValidation so the
// handler can echo them back to the caller.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return ErrValidation.Error() }

func (e *ValidationError) Unwrap() error { return ErrValidation }
