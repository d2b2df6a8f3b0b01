package service

import (
	"context"
	"fmt"
	"time"

	"github.com/DusanVelimirovic/corelayer-identity/internal/auth/domain"
	"github.com/DusanVelimirovic/corelayer-identity/internal/auth/dto"
	"github.com/DusanVelimirovic/corelayer-identity/pkg/constant"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// PasswordResetService runs the reset token lifecycle: request, validate,
// consume. Callers must render the same outward response whether or not
// Request found a user; the boolean is for internal use only.
type PasswordResetService struct {
	users    domain.UserRepository
	resets   domain.PasswordResetRepository
	audit    domain.AuditRepository
	email    domain.EmailSender
	tokenTTL time.Duration
}

func NewPasswordResetService(
	users domain.UserRepository,
	resets domain.PasswordResetRepository,
	audit domain.AuditRepository,
	email domain.EmailSender,
	tokenTTL time.Duration,
) *PasswordResetService {
	return &PasswordResetService{
		users:    users,
		resets:   resets,
		audit:    audit,
		email:    email,
		tokenTTL: tokenTTL,
	}
}

// Request issues a fresh reset token for the account behind email, first
// soft-invalidating any still-active tokens. Unknown or unconfirmed
// addresses are skipped silently to avoid enumeration.
func (s *PasswordResetService) Request(ctx context.Context, input dto.PasswordResetRequestInput) (bool, error) {
	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return false, err
	}

	if user == nil || !user.EmailConfirmed {
		return false, nil
	}

	now := time.Now().UTC()

	if err := s.resets.InvalidateActive(ctx, user.ID, now); err != nil {
		return false, err
	}

	token := &domain.PasswordResetToken{
		ID:             uuid.NewString(),
		UserID:         user.ID,
		Token:          uuid.NewString(),
		ExpirationTime: now.Add(s.tokenTTL),
		CreatedAt:      now,
	}

	if err := s.resets.Store(ctx, token); err != nil {
		return false, err
	}

	sendErr := s.email.SendResetLink(ctx, user.Email, token.Token)

	entry := &domain.EmailAuditEntry{
		ToEmail:      user.Email,
		TemplateType: constant.TemplatePasswordReset,
		Success:      sendErr == nil,
		UserID:       &user.ID,
	}
	if sendErr != nil {
		msg := sendErr.Error()
		entry.ErrorMessage = &msg
	}

	if err := s.audit.RecordEmailAttempt(ctx, entry); err != nil {
		return false, err
	}

	err = s.saveResetAudit(ctx, user.ID, input.IPAddress, input.UserAgent, constant.ReasonResetRequested, true)
	if err != nil {
		return false, err
	}

	return true, nil
}

// Validate checks the newest token row matching (userID, token): it must
// exist, be unused and unexpired. The reply never distinguishes wrong from
// expired from already-used.
func (s *PasswordResetService) Validate(ctx context.Context, userID, token string) (bool, error) {
	t, err := s.resets.FindLatest(ctx, userID, token)
	if err != nil {
		return false, err
	}

	return t != nil && t.ValidAt(time.Now().UTC()), nil
}

// Reset consumes the token and installs the new password. Marking the
// token used and updating the credential commit together; if the credential
// update fails the token stays unused and the failure is audited.
func (s *PasswordResetService) Reset(ctx context.Context, input dto.ResetPasswordInput) (bool, error) {
	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return false, err
	}

	if user == nil {
		return false, nil
	}

	token, err := s.resets.FindLatest(ctx, user.ID, input.Token)
	if err != nil {
		return false, err
	}

	if token == nil || !token.ValidAt(time.Now().UTC()) {
		err := s.saveResetAudit(ctx, user.ID, input.IPAddress, input.UserAgent, constant.ReasonResetRejected, false)
		if err != nil {
			return false, err
		}

		return false, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.resets.ConsumeWithPassword(ctx, token.ID, user.ID, string(hash)); err != nil {
		if auditErr := s.saveResetAudit(ctx, user.ID, input.IPAddress, input.UserAgent, constant.ReasonResetRejected, false); auditErr != nil {
			return false, auditErr
		}

		return false, err
	}

	err = s.saveResetAudit(ctx, user.ID, input.IPAddress, input.UserAgent, constant.ReasonResetCompleted, true)
	if err != nil {
		return false, err
	}

	return true, nil
}

func (s *PasswordResetService) saveResetAudit(ctx context.Context, userID, ip, userAgent, message string, success bool) error {
	return s.audit.RecordLoginAttempt(ctx, &domain.LoginAuditEntry{
		UserID:        userID,
		IPAddress:     strPtr(ip),
		UserAgent:     strPtr(userAgent),
		Success:       success,
		FailureReason: strPtr(message),
	})
}
