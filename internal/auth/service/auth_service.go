package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"time"

	"github.com/DusanVelimirovic/corelayer-identity/config"
	"github.com/DusanVelimirovic/corelayer-identity/internal/auth/domain"
	"github.com/DusanVelimirovic/corelayer-identity/internal/auth/dto"
	"github.com/DusanVelimirovic/corelayer-identity/pkg/constant"
	"github.com/google/uuid"
)

// User-facing messages. Failure messages never reveal whether the
// identifier existed or the account was inactive; only the rate-limit and
// lockout cases are distinct.
const (
	MsgInvalidCredentials = "Invalid credentials."
	MsgTooManyAttempts    = "Too many failed login attempts. Please wait a few minutes and try again."
	MsgTwoFactorRequired  = "2FA required. Check your email for the code."
	MsgTrustedDevice      = "Trusted device. 2FA skipped."
	MsgLoginSuccess       = "Login successful."
	MsgInvalidCode        = "Invalid or expired code."
)

// AuthService orchestrates credential verification, throttling, 2FA,
// trusted devices and audit writes. Every login-relevant branch records
// exactly one login audit entry, and the write completes before the
// response is returned.
type AuthService struct {
	verifier *CredentialVerifier
	users    domain.UserRepository
	audit    domain.AuditRepository
	tokens   domain.TwoFactorTokenRepository
	devices  domain.TrustedDeviceRepository
	perms    domain.PermissionRepository
	email    domain.EmailSender
	sessions domain.SessionManager
	cfg      *config.Config
}

func NewAuthService(
	verifier *CredentialVerifier,
	users domain.UserRepository,
	audit domain.AuditRepository,
	tokens domain.TwoFactorTokenRepository,
	devices domain.TrustedDeviceRepository,
	perms domain.PermissionRepository,
	email domain.EmailSender,
	sessions domain.SessionManager,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		verifier: verifier,
		users:    users,
		audit:    audit,
		tokens:   tokens,
		devices:  devices,
		perms:    perms,
		email:    email,
		sessions: sessions,
		cfg:      cfg,
	}
}

func (s *AuthService) Login(ctx context.Context, input dto.LoginInput) (*dto.LoginResponse, error) {
	now := time.Now().UTC()

	user, status, err := s.verifier.Lookup(ctx, input.UserNameOrEmail)
	if err != nil {
		return nil, err
	}

	switch status {
	case VerifyNotFound:
		err := s.saveLoginAttempt(ctx, loginAttempt{
			userID:    constant.UnknownUserID,
			input:     &input,
			reason:    constant.ReasonUserNotFound,
			isTrusted: boolPtr(false),
		})
		if err != nil {
			return nil, err
		}

		return &dto.LoginResponse{Success: false, Message: MsgInvalidCredentials}, nil

	case VerifyInactive:
		// Deliberately indistinguishable from an unknown identifier.
		err := s.saveLoginAttempt(ctx, loginAttempt{
			userID:    user.ID,
			input:     &input,
			reason:    constant.ReasonAccountInactive,
			isTrusted: boolPtr(false),
		})
		if err != nil {
			return nil, err
		}

		return &dto.LoginResponse{Success: false, Message: MsgInvalidCredentials}, nil
	}

	window := time.Duration(s.cfg.LoginWindowMin) * time.Minute

	recentFailures, err := s.audit.CountRecentFailures(ctx, user.ID, now.Add(-window))
	if err != nil {
		return nil, fmt.Errorf("failed to check login attempts: %w", err)
	}

	// Rejected before the password is even checked, so a throttled account
	// cannot be brute-forced against its real credential either.
	if recentFailures >= s.cfg.LoginMaxAttempts {
		reason := fmt.Sprintf("Too many failed attempts (%d in %d min)", recentFailures, s.cfg.LoginWindowMin)

		err := s.saveLoginAttempt(ctx, loginAttempt{
			userID:    user.ID,
			input:     &input,
			reason:    reason,
			isTrusted: boolPtr(false),
		})
		if err != nil {
			return nil, err
		}

		return &dto.LoginResponse{Success: false, Message: MsgTooManyAttempts}, nil
	}

	passStatus, err := s.verifier.CheckPassword(ctx, user, input.Password)
	if err != nil {
		return nil, err
	}

	if passStatus != VerifyOK {
		reason := constant.ReasonInvalidPassword
		if passStatus == VerifyLockedOut {
			reason = constant.ReasonAccountLocked
		}

		err := s.saveLoginAttempt(ctx, loginAttempt{
			userID:    user.ID,
			input:     &input,
			reason:    reason,
			isTrusted: boolPtr(false),
		})
		if err != nil {
			return nil, err
		}

		attemptsLeft := s.cfg.LoginMaxAttempts - recentFailures - 1

		message := reason
		if attemptsLeft > 0 {
			message = fmt.Sprintf("%s (%d attempts left before account lock)", reason, attemptsLeft)
		}

		return &dto.LoginResponse{
			Success:           false,
			Message:           message,
			RemainingAttempts: &attemptsLeft,
		}, nil
	}

	roleIDs, roleNames, moduleIDs, err := s.loadAccess(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	if user.TwoFactorEnabled {
		if input.DeviceIdentifier != "" {
			trusted, err := s.devices.ExistsValid(ctx, user.ID, input.DeviceIdentifier, now)
			if err != nil {
				return nil, err
			}

			if trusted {
				return s.finishTrustedLogin(ctx, user, &input, roleIDs, roleNames, moduleIDs)
			}
		}

		return s.beginTwoFactor(ctx, user, &input)
	}

	token, expiresAt, err := s.sessions.Establish(ctx, user.ID, roleIDs, true)
	if err != nil {
		return nil, err
	}

	err = s.saveLoginAttempt(ctx, loginAttempt{
		userID:    user.ID,
		input:     &input,
		success:   true,
		isTrusted: boolPtr(false),
	})
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Success:             true,
		Message:             MsgLoginSuccess,
		UserID:              user.ID,
		RoleIDs:             roleIDs,
		RoleNames:           roleNames,
		ModuleIDsWithAccess: moduleIDs,
		SessionToken:        token,
		SessionExpiresAt:    &expiresAt,
	}, nil
}

// finishTrustedLogin completes a 2FA-enabled login whose device is still
// trusted: the second factor is skipped and a short-lived session issued.
func (s *AuthService) finishTrustedLogin(ctx context.Context, user *domain.User, input *dto.LoginInput, roleIDs, roleNames []string, moduleIDs []int) (*dto.LoginResponse, error) {
	token, expiresAt, err := s.sessions.Establish(ctx, user.ID, roleIDs, false)
	if err != nil {
		return nil, err
	}

	err = s.saveLoginAttempt(ctx, loginAttempt{
		userID:       user.ID,
		input:        input,
		success:      true,
		is2FASuccess: boolPtr(true),
		isTrusted:    boolPtr(true),
	})
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Success:             true,
		Message:             MsgTrustedDevice,
		UserID:              user.ID,
		RoleIDs:             roleIDs,
		RoleNames:           roleNames,
		ModuleIDsWithAccess: moduleIDs,
		SessionToken:        token,
		SessionExpiresAt:    &expiresAt,
	}, nil
}

// beginTwoFactor issues a fresh emailed code and reports the attempt as a
// failed login with reason "2FA required". Roles and modules are withheld
// until the second factor (or a trusted device) confirms the user.
func (s *AuthService) beginTwoFactor(ctx context.Context, user *domain.User, input *dto.LoginInput) (*dto.LoginResponse, error) {
	if err := s.issueTwoFactorToken(ctx, user); err != nil {
		return nil, err
	}

	err := s.saveLoginAttempt(ctx, loginAttempt{
		userID:       user.ID,
		input:        input,
		reason:       constant.ReasonTwoFactorNeeded,
		is2FASuccess: boolPtr(false),
		isTrusted:    boolPtr(false),
	})
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Success:           false,
		RequiresTwoFactor: true,
		Message:           MsgTwoFactorRequired,
		UserID:            user.ID,
	}, nil
}

// issueTwoFactorToken stores a new code and dispatches it by email. The
// email outcome lands in the email audit log; a delivery failure does not
// fail the login flow. Earlier unexpired codes stay valid.
func (s *AuthService) issueTwoFactorToken(ctx context.Context, user *domain.User) error {
	code, err := generateTwoFactorCode()
	if err != nil {
		return err
	}

	token := &domain.TwoFactorToken{
		ID:     uuid.NewString(),
		UserID: user.ID,
		Code:   code,
		Expiry: time.Now().UTC().Add(time.Duration(s.cfg.TwoFactorTTLMin) * time.Minute),
	}

	if err := s.tokens.Store(ctx, token); err != nil {
		return err
	}

	sendErr := s.email.Send2FACode(ctx, user.Email, code)

	return s.recordEmailAttempt(ctx, user, constant.TemplateTwoFactor, sendErr)
}

func (s *AuthService) recordEmailAttempt(ctx context.Context, user *domain.User, template string, sendErr error) error {
	entry := &domain.EmailAuditEntry{
		ToEmail:      user.Email,
		TemplateType: template,
		Success:      sendErr == nil,
		UserID:       &user.ID,
	}

	if sendErr != nil {
		msg := sendErr.Error()
		entry.ErrorMessage = &msg

		log.Printf("warn: failed to send %s email to user %s: %v", template, user.ID, sendErr)
	}

	return s.audit.RecordEmailAttempt(ctx, entry)
}

// VerifyTwoFactor consumes a matching unexpired code. The token is deleted
// on success (single-use) and left untouched otherwise.
func (s *AuthService) VerifyTwoFactor(ctx context.Context, input dto.TwoFactorVerifyInput) (bool, error) {
	token, err := s.tokens.FindValid(ctx, input.UserID, input.Code, time.Now().UTC())
	if err != nil {
		return false, err
	}

	attempt := loginAttempt{
		userID:    input.UserID,
		ip:        input.IPAddress,
		userAgent: input.UserAgent,
		isTrusted: boolPtr(false),
	}

	if token == nil {
		attempt.reason = constant.ReasonInvalid2FAToken
		attempt.is2FASuccess = boolPtr(false)

		if err := s.saveLoginAttempt(ctx, attempt); err != nil {
			return false, err
		}

		return false, nil
	}

	if err := s.tokens.Delete(ctx, token.ID); err != nil {
		return false, err
	}

	attempt.success = true
	attempt.is2FASuccess = boolPtr(true)

	if err := s.saveLoginAttempt(ctx, attempt); err != nil {
		return false, err
	}

	return true, nil
}

// LoginAfterTwoFactor verifies the code and, on success, establishes the
// session and releases role and module access.
func (s *AuthService) LoginAfterTwoFactor(ctx context.Context, input dto.TwoFactorVerifyInput) (*dto.LoginResponse, error) {
	verified, err := s.VerifyTwoFactor(ctx, input)
	if err != nil {
		return nil, err
	}

	if !verified {
		return &dto.LoginResponse{Success: false, Message: MsgInvalidCode}, nil
	}

	roleIDs, roleNames, moduleIDs, err := s.loadAccess(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := s.sessions.Establish(ctx, input.UserID, roleIDs, false)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Success:             true,
		Message:             MsgLoginSuccess,
		UserID:              input.UserID,
		RoleIDs:             roleIDs,
		RoleNames:           roleNames,
		ModuleIDsWithAccess: moduleIDs,
		SessionToken:        token,
		SessionExpiresAt:    &expiresAt,
	}, nil
}

// TrustDevice registers the device for 2FA bypass. Idempotent: an existing
// registration returns true without a new row or audit entry.
func (s *AuthService) TrustDevice(ctx context.Context, input dto.TrustedDeviceInput) (bool, error) {
	exists, err := s.devices.Exists(ctx, input.UserID, input.DeviceIdentifier)
	if err != nil {
		return false, err
	}

	if exists {
		return true, nil
	}

	now := time.Now().UTC()
	expiresOn := now.Add(time.Duration(s.cfg.TrustedDeviceDays) * 24 * time.Hour)

	device := &domain.TrustedDevice{
		ID:               uuid.NewString(),
		UserID:           input.UserID,
		DeviceIdentifier: input.DeviceIdentifier,
		DeviceName:       strPtr(input.DeviceName),
		TrustedOn:        now,
		ExpiresOn:        &expiresOn,
	}

	if err := s.devices.Create(ctx, device); err != nil {
		return false, err
	}

	err = s.saveLoginAttempt(ctx, loginAttempt{
		userID:       input.UserID,
		ip:           input.IPAddress,
		userAgent:    input.UserAgent,
		success:      true,
		is2FASuccess: boolPtr(true),
		deviceName:   input.DeviceName,
		isTrusted:    boolPtr(true),
	})
	if err != nil {
		return false, err
	}

	return true, nil
}

func (s *AuthService) Logout(ctx context.Context, sessionToken string) error {
	return s.sessions.Revoke(ctx, sessionToken)
}

func (s *AuthService) GetLoginAuditLogs(ctx context.Context, query dto.LoginAuditQueryInput) ([]dto.LoginAuditEntryOutput, error) {
	entries, err := s.audit.ListLoginAttempts(ctx, domain.LoginAuditFilter{
		UserIDOrEmail: query.UserIDOrEmail,
		Success:       query.Success,
		From:          query.From,
		To:            query.To,
		Page:          query.Page,
		PageSize:      query.PageSize,
	})
	if err != nil {
		return nil, err
	}

	out := make([]dto.LoginAuditEntryOutput, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.LoginAuditEntryOutput{
			ID:              e.ID,
			UserID:          e.UserID,
			IPAddress:       e.IPAddress,
			UserAgent:       e.UserAgent,
			LoginTime:       e.LoginTime,
			Success:         e.Success,
			Is2FASuccess:    e.Is2FASuccess,
			FailureReason:   e.FailureReason,
			DeviceName:      e.DeviceName,
			IsTrustedDevice: e.IsTrustedDevice,
		})
	}

	return out, nil
}

func (s *AuthService) loadAccess(ctx context.Context, userID string) (roleIDs, roleNames []string, moduleIDs []int, err error) {
	roles, err := s.users.GetRoles(ctx, userID)
	if err != nil {
		return nil, nil, nil, err
	}

	for _, role := range roles {
		roleIDs = append(roleIDs, role.ID)
		roleNames = append(roleNames, role.Name)
	}

	moduleIDs, err = s.perms.GetAccessibleModuleIDs(ctx, roleIDs)
	if err != nil {
		return nil, nil, nil, err
	}

	return roleIDs, roleNames, moduleIDs, nil
}

// loginAttempt gathers everything one audit row needs. When input is set,
// ip/userAgent/deviceName are taken from it.
type loginAttempt struct {
	userID       string
	input        *dto.LoginInput
	ip           string
	userAgent    string
	success      bool
	reason       string
	is2FASuccess *bool
	deviceName   string
	isTrusted    *bool
}

func (s *AuthService) saveLoginAttempt(ctx context.Context, a loginAttempt) error {
	if a.input != nil {
		a.ip = a.input.IPAddress
		a.userAgent = a.input.UserAgent
		a.deviceName = a.input.DeviceName
	}

	return s.audit.RecordLoginAttempt(ctx, &domain.LoginAuditEntry{
		UserID:          a.userID,
		IPAddress:       strPtr(a.ip),
		UserAgent:       strPtr(a.userAgent),
		Success:         a.success,
		Is2FASuccess:    a.is2FASuccess,
		FailureReason:   strPtr(a.reason),
		DeviceName:      strPtr(a.deviceName),
		IsTrustedDevice: a.isTrusted,
	})
}

func generateTwoFactorCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("failed to generate 2FA code: %w", err)
	}

	return fmt.Sprintf("%06d", n.Int64()), nil
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func boolPtr(b bool) *bool {
	return &b
}
