package errors

import (
	"errors"
)

var (
	ErrUserExists      = errors.New("user already exists")
	ErrInvalidAddress  = errors.New("invalid address")
	ErrUserNotFound    = errors.New("user does not exist")
	ErrInvalidPassword = errors.New("invalid password")
)
