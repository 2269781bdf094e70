package utils

import "errors"

var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrWeakPassword       = errors.New("password too weak")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidOldPassword = errors.New("old password is incorrect")
	ErrTokenMalformed     = errors.New("token is invalid")
	ErrTokenExpired       = errors.New("token has expired")
	ErrTokenBlacklisted   = errors.New("token is blacklisted")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrNotFound           = errors.New("not found")
	ErrDatabaseError      = errors.New("database error")
)
