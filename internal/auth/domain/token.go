package domain

import "time"

// TwoFactorToken is a single-use emailed login code. Issuing a new token
// does not invalidate earlier unexpired ones; any matching unexpired code
// verifies. Tokens are deleted on successful verification.
type TwoFactorToken struct {
	ID     string
	UserID string
	Code   string
	Expiry time.Time
}

type TrustedDevice struct {
	ID               string
	UserID           string
	DeviceIdentifier string
	DeviceName       *string
	TrustedOn        time.Time
	ExpiresOn        *time.Time
}

// PasswordResetToken is soft-invalidated (IsUsed flips to true) rather
// than deleted, so the full reset history stays auditable.
type PasswordResetToken struct {
	ID             string
	UserID         string
	Token          string
	ExpirationTime time.Time
	IsUsed         bool
	CreatedAt      time.Time
}

// ValidAt reports whether the reset token can still be consumed at t.
func (p *PasswordResetToken) ValidAt(t time.Time) bool {
	return !p.IsUsed && p.ExpirationTime.After(t)
}
