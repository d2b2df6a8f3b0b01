package domain

import (
	"context"
	"time"
)

type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	RecordPasswordFailure(ctx context.Context, userID string, maxFailures int, lockoutFor time.Duration) (bool, error)
	ClearPasswordFailures(ctx context.Context, userID string) error
	GetRoles(ctx context.Context, userID string) ([]Role, error)
}

type AuditRepository interface {
	RecordLoginAttempt(ctx context.Context, entry *LoginAuditEntry) error
	CountRecentFailures(ctx context.Context, userID string, since time.Time) (int, error)
	ListLoginAttempts(ctx context.Context, filter LoginAuditFilter) ([]LoginAuditEntry, error)
	RecordEmailAttempt(ctx context.Context, entry *EmailAuditEntry) error
}

type TwoFactorTokenRepository interface {
	Store(ctx context.Context, token *TwoFactorToken) error
	FindValid(ctx context.Context, userID, code string, now time.Time) (*TwoFactorToken, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}

type TrustedDeviceRepository interface {
	Exists(ctx context.Context, userID, deviceIdentifier string) (bool, error)
	ExistsValid(ctx context.Context, userID, deviceIdentifier string, now time.Time) (bool, error)
	Create(ctx context.Context, device *TrustedDevice) error
}

type PasswordResetRepository interface {
	InvalidateActive(ctx context.Context, userID string, now time.Time) error
	Store(ctx context.Context, token *PasswordResetToken) error
	FindLatest(ctx context.Context, userID, token string) (*PasswordResetToken, error)
	ConsumeWithPassword(ctx context.Context, tokenID, userID, newPasswordHash string) error
}

type PermissionRepository interface {
	GetAccessibleModuleIDs(ctx context.Context, roleIDs []string) ([]int, error)
}

// EmailSender is the outbound email capability. A send failure is a local
// condition recorded in the email audit log; it never fails the flow that
// triggered it.
type EmailSender interface {
	Send2FACode(ctx context.Context, toEmail, code string) error
	SendResetLink(ctx context.Context, toEmail, token string) error
}

// SessionManager is the opaque session capability. Establish returns a
// bearer token and its expiry; Verify returns the user ID a live token
// belongs to.
type SessionManager interface {
	Establish(ctx context.Context, userID string, roleIDs []string, persistent bool) (string, time.Time, error)
	Verify(ctx context.Context, token string) (string, error)
	Revoke(ctx context.Context, token string) error
}
