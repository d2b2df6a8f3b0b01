package errors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrTooManyLoginAttempts = errors.New("too many failed login attempts")
	ErrAccountLocked        = errors.New("account locked")
	ErrInvalidOrExpiredCode = errors.New("invalid or expired code")
	ErrSessionRevoked       = errors.New("session revoked")
	ErrSessionInvalid       = errors.New("invalid session token")
	ErrAuditLogImmutable    = errors.New("audit log entries cannot be modified or deleted")
)

// raiseException is the SQLSTATE produced by the audit-log guard triggers.
const raiseException = "P0001"

// IsIntegrityViolation reports whether err came from the storage layer
// rejecting a mutation of an append-only audit table.
func IsIntegrityViolation(err error) bool {
	if errors.Is(err, ErrAuditLogImmutable) {
		return true
	}

	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == raiseException
}
