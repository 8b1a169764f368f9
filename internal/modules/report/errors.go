package report

import "errors"

var (
	ErrNotFound  = errors.New("report not found")
	ErrForbidden = errors.New("insufficient permissions")

	// ErrReportLocked: an operador may not modify a completed report.
	ErrReportLocked = errors.New("completed report is locked")
	// ErrTerminalStatusLock: only admin may move a completed report back to pending.
	ErrTerminalStatusLock = errors.New("completed status cannot be reverted")

	ErrMissingPendingReason  = errors.New("pending status requires a reason")
	ErrContactClientMismatch = errors.New("contact does not belong to the given client")

	ErrClientNotFound     = errors.New("client not found")
	ErrContactNotFound    = errors.New("contact not found")
	ErrEquipmentNotFound  = errors.New("equipment not found")
	ErrTechnicianNotFound = errors.New("technician not found")

	ErrInvalidServiceType   = errors.New("invalid service type")
	ErrInvalidBillingType   = errors.New("invalid billing type")
	ErrInvalidStatus        = errors.New("invalid report status")
	ErrBatteryOutOfRange    = errors.New("battery percentage must be between 0 and 100")
	ErrInvalidSignatureRole = errors.New("signature type must be client or technician")

	ErrUnsupportedMediaType = errors.New("unsupported file type")
	ErrFileTooLarge         = errors.New("file exceeds the size limit")
)
