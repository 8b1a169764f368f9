package users

import "errors"

var (
	ErrNotFound     = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
	ErrInvalidRole  = errors.New("invalid role")
	ErrForbidden    = errors.New("insufficient permissions")
	ErrSelfDelete   = errors.New("cannot delete own account")
	ErrRoleChange   = errors.New("only admin can change roles")
	ErrLastAdmin    = errors.New("cannot remove the last admin")
	ErrWeakPassword = errors.New("password too short")
)
