package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/DusanVelimirovic/corelayer-identity/internal/auth/domain"
	"golang.org/x/crypto/bcrypt"
)

type VerifyStatus int

const (
	VerifyOK VerifyStatus = iota
	VerifyNotFound
	VerifyInactive
	VerifyLockedOut
	VerifyWrongPassword
)

// CredentialVerifier resolves an identifier against username or email and
// checks the password. The store-level lockout it enforces (counter on the
// user row) is independent of the orchestrator's audit-based throttle.
type CredentialVerifier struct {
	users       domain.UserRepository
	maxFailures int
	lockoutFor  time.Duration
}

func NewCredentialVerifier(users domain.UserRepository, maxFailures int, lockoutFor time.Duration) *CredentialVerifier {
	return &CredentialVerifier{
		users:       users,
		maxFailures: maxFailures,
		lockoutFor:  lockoutFor,
	}
}

// Lookup resolves the identifier, trying username first, then email.
func (v *CredentialVerifier) Lookup(ctx context.Context, identifier string) (*domain.User, VerifyStatus, error) {
	user, err := v.users.GetByUsername(ctx, identifier)
	if err != nil {
		return nil, VerifyNotFound, err
	}

	if user == nil {
		user, err = v.users.GetByEmail(ctx, identifier)
		if err != nil {
			return nil, VerifyNotFound, err
		}
	}

	if user == nil {
		return nil, VerifyNotFound, nil
	}

	if !user.IsActive {
		return user, VerifyInactive, nil
	}

	return user, VerifyOK, nil
}

// CheckPassword verifies the password against the stored hash, maintaining
// the failure counter and lockout window on the user row.
func (v *CredentialVerifier) CheckPassword(ctx context.Context, user *domain.User, password string) (VerifyStatus, error) {
	now := time.Now().UTC()

	if user.LockedOutAt(now) {
		return VerifyLockedOut, nil
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		lockedOut, err := v.users.RecordPasswordFailure(ctx, user.ID, v.maxFailures, v.lockoutFor)
		if err != nil {
			return VerifyWrongPassword, fmt.Errorf("failed to record password failure: %w", err)
		}

		if lockedOut {
			return VerifyLockedOut, nil
		}

		return VerifyWrongPassword, nil
	}

	if err := v.users.ClearPasswordFailures(ctx, user.ID); err != nil {
		// Not fatal: the user authenticated, the counter reset can wait.
		log.Printf("warn: failed to clear password failures for user %s: %v", user.ID, err)
	}

	return VerifyOK, nil
}
