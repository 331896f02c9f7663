package domain

import (
	"context"
	"time"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, user *User) (*User, error)
	IncrementLoginAttempt(ctx context.Context, id string, maxAttempts int) error
	ResetLoginAttempt(ctx context.Context, id string) error
	SetResetToken(ctx context.Context, id, token string, expiresAt time.Time) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}

type RefreshTokenRepository interface {
	Store(ctx context.Context, rt *RefreshToken) error
	GetByToken(ctx context.Context, token string) (*RefreshToken, error)
}

type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}
