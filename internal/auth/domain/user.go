package domain

import "time"

type User struct {
	ID                  string
	Email               string
	PasswordHash        string
	LoginAttempt        int
	Enable              bool
	ResetToken          *string
	ResetTokenExpiresAt *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// RecomputeEnable derives the enable flag from the attempt counter.
// Every write path that changes LoginAttempt must apply this before
// the record is persisted.
func (u *User) RecomputeEnable(maxAttempts int) {
	u.Enable = u.LoginAttempt < maxAttempts
}

type RefreshToken struct {
	ID                string
	UserID            string
	Token             string
	DeviceFingerprint string
	IPAddress         string
	UserAgent         string
	ExpiresAt         time.Time
	CreatedAt         time.Time
}
