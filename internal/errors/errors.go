package errors

import (
	"errors"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account disabled, please reset your password")
	ErrInvalidOrExpired   = errors.New("invalid token or token expired")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUserNotFound       = errors.New("user not found")
	ErrRegistrationFailed = errors.New("registration failed")
	ErrInvalidResetToken  = errors.New("invalid reset token")
	ErrResetTokenExpired  = errors.New("reset token expired")
)
