package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DusanVelimirovic/corelayer-identity/internal/auth/domain"
	"github.com/DusanVelimirovic/corelayer-identity/internal/auth/dto"
	"github.com/DusanVelimirovic/corelayer-identity/internal/auth/service"
	"github.com/DusanVelimirovic/corelayer-identity/internal/mocks"
	"github.com/DusanVelimirovic/corelayer-identity/pkg/constant"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type resetFixture struct {
	users  *mocks.MockUserRepository
	resets *mocks.MockPasswordResetRepository
	audit  *mocks.MockAuditRepository
	email  *mocks.MockEmailSender
	svc    *service.PasswordResetService
}

func newResetFixture(t *testing.T, ctrl *gomock.Controller) *resetFixture {
	t.Helper()

	f := &resetFixture{
		users:  mocks.NewMockUserRepository(ctrl),
		resets: mocks.NewMockPasswordResetRepository(ctrl),
		audit:  mocks.NewMockAuditRepository(ctrl),
		email:  mocks.NewMockEmailSender(ctrl),
	}
	f.svc = service.NewPasswordResetService(f.users, f.resets, f.audit, f.email, 30*time.Minute)

	return f
}

func confirmedUser() *domain.User {
	return &domain.User{
		ID:             "user-1",
		Email:          "alice@example.com",
		EmailConfirmed: true,
		IsActive:       true,
	}
}

func TestPasswordResetService_Request_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newResetFixture(t, ctrl)
	user := confirmedUser()

	f.users.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)
	f.resets.EXPECT().InvalidateActive(gomock.Any(), user.ID, gomock.Any()).Return(nil)

	var stored *domain.PasswordResetToken
	f.resets.EXPECT().Store(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, token *domain.PasswordResetToken) error {
			stored = token
			return nil
		})
	f.email.EXPECT().SendResetLink(gomock.Any(), user.Email, gomock.Any()).Return(nil)

	var emailEntry *domain.EmailAuditEntry
	f.audit.EXPECT().RecordEmailAttempt(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *domain.EmailAuditEntry) error {
			emailEntry = entry
			return nil
		})

	var loginEntry *domain.LoginAuditEntry
	f.audit.EXPECT().RecordLoginAttempt(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *domain.LoginAuditEntry) error {
			loginEntry = entry
			return nil
		})

	issued, err := f.svc.Request(context.Background(), dto.PasswordResetRequestInput{Email: user.Email})

	assert.NoError(t, err)
	assert.True(t, issued)

	require.NotNil(t, stored)
	assert.Equal(t, user.ID, stored.UserID)
	assert.NotEmpty(t, stored.Token)
	assert.False(t, stored.IsUsed)
	assert.WithinDuration(t, time.Now().UTC().Add(30*time.Minute), stored.ExpirationTime, time.Minute)

	require.NotNil(t, emailEntry)
	assert.Equal(t, constant.TemplatePasswordReset, emailEntry.TemplateType)
	assert.True(t, emailEntry.Success)

	require.NotNil(t, loginEntry)
	assert.True(t, loginEntry.Success)
	require.NotNil(t, loginEntry.FailureReason)
	assert.Equal(t, constant.ReasonResetRequested, *loginEntry.FailureReason)
}

func TestPasswordResetService_Request_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newResetFixture(t, ctrl)

	// No token, no email, no audit row. The handler still answers 200.
	f.users.EXPECT().GetByEmail(gomock.Any(), "ghost@example.com").Return(nil, nil)

	issued, err := f.svc.Request(context.Background(), dto.PasswordResetRequestInput{Email: "ghost@example.com"})

	assert.NoError(t, err)
	assert.False(t, issued)
}

func TestPasswordResetService_Request_UnconfirmedEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newResetFixture(t, ctrl)

	user := confirmedUser()
	user.EmailConfirmed = false

	f.users.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)

	issued, err := f.svc.Request(context.Background(), dto.PasswordResetRequestInput{Email: user.Email})

	assert.NoError(t, err)
	assert.False(t, issued)
}

func TestPasswordResetService_Validate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newResetFixture(t, ctrl)

	valid := &domain.PasswordResetToken{
		ID:             "reset-1",
		UserID:         "user-1",
		Token:          "tok",
		ExpirationTime: time.Now().UTC().Add(10 * time.Minute),
	}
	used := &domain.PasswordResetToken{
		ID:             "reset-2",
		UserID:         "user-1",
		Token:          "tok-used",
		ExpirationTime: time.Now().UTC().Add(10 * time.Minute),
		IsUsed:         true,
	}
	expired := &domain.PasswordResetToken{
		ID:             "reset-3",
		UserID:         "user-1",
		Token:          "tok-old",
		ExpirationTime: time.Now().UTC().Add(-time.Minute),
	}

	f.resets.EXPECT().FindLatest(gomock.Any(), "user-1", "tok").Return(valid, nil)
	f.resets.EXPECT().FindLatest(gomock.Any(), "user-1", "tok-used").Return(used, nil)
	f.resets.EXPECT().FindLatest(gomock.Any(), "user-1", "tok-old").Return(expired, nil)
	f.resets.EXPECT().FindLatest(gomock.Any(), "user-1", "missing").Return(nil, nil)

	ok, err := f.svc.Validate(context.Background(), "user-1", "tok")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.svc.Validate(context.Background(), "user-1", "tok-used")
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = f.svc.Validate(context.Background(), "user-1", "tok-old")
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = f.svc.Validate(context.Background(), "user-1", "missing")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestPasswordResetService_Reset_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newResetFixture(t, ctrl)
	user := confirmedUser()

	token := &domain.PasswordResetToken{
		ID:             "reset-1",
		UserID:         user.ID,
		Token:          "tok",
		ExpirationTime: time.Now().UTC().Add(10 * time.Minute),
	}

	f.users.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)
	f.resets.EXPECT().FindLatest(gomock.Any(), user.ID, "tok").Return(token, nil)

	var newHash string
	f.resets.EXPECT().ConsumeWithPassword(gomock.Any(), token.ID, user.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, hash string) error {
			newHash = hash
			return nil
		})

	var loginEntry *domain.LoginAuditEntry
	f.audit.EXPECT().RecordLoginAttempt(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *domain.LoginAuditEntry) error {
			loginEntry = entry
			return nil
		})

	ok, err := f.svc.Reset(context.Background(), dto.ResetPasswordInput{
		Email:       user.Email,
		Token:       "tok",
		NewPassword: "brand-new-password",
	})

	assert.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(newHash), []byte("brand-new-password")))

	require.NotNil(t, loginEntry)
	assert.True(t, loginEntry.Success)
	require.NotNil(t, loginEntry.FailureReason)
	assert.Equal(t, constant.ReasonResetCompleted, *loginEntry.FailureReason)
}

func TestPasswordResetService_Reset_InvalidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newResetFixture(t, ctrl)
	user := confirmedUser()

	f.users.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)
	f.resets.EXPECT().FindLatest(gomock.Any(), user.ID, "bogus").Return(nil, nil)

	var loginEntry *domain.LoginAuditEntry
	f.audit.EXPECT().RecordLoginAttempt(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *domain.LoginAuditEntry) error {
			loginEntry = entry
			return nil
		})

	ok, err := f.svc.Reset(context.Background(), dto.ResetPasswordInput{
		Email:       user.Email,
		Token:       "bogus",
		NewPassword: "whatever",
	})

	assert.NoError(t, err)
	assert.False(t, ok)
	require.NotNil(t, loginEntry)
	assert.False(t, loginEntry.Success)
	require.NotNil(t, loginEntry.FailureReason)
	assert.Equal(t, constant.ReasonResetRejected, *loginEntry.FailureReason)
}

func TestPasswordResetService_Reset_UsedToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newResetFixture(t, ctrl)
	user := confirmedUser()

	token := &domain.PasswordResetToken{
		ID:             "reset-1",
		UserID:         user.ID,
		Token:          "tok",
		ExpirationTime: time.Now().UTC().Add(10 * time.Minute),
		IsUsed:         true,
	}

	f.users.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)
	f.resets.EXPECT().FindLatest(gomock.Any(), user.ID, "tok").Return(token, nil)
	f.audit.EXPECT().RecordLoginAttempt(gomock.Any(), gomock.Any()).Return(nil)

	ok, err := f.svc.Reset(context.Background(), dto.ResetPasswordInput{
		Email:       user.Email,
		Token:       "tok",
		NewPassword: "whatever",
	})

	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestPasswordResetService_Reset_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newResetFixture(t, ctrl)

	f.users.EXPECT().GetByEmail(gomock.Any(), "ghost@example.com").Return(nil, nil)

	ok, err := f.svc.Reset(context.Background(), dto.ResetPasswordInput{
		Email:       "ghost@example.com",
		Token:       "tok",
		NewPassword: "whatever",
	})

	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestPasswordResetService_Reset_ConsumeError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newResetFixture(t, ctrl)
	user := confirmedUser()

	token := &domain.PasswordResetToken{
		ID:             "reset-1",
		UserID:         user.ID,
		Token:          "tok",
		ExpirationTime: time.Now().UTC().Add(10 * time.Minute),
	}

	consumeErr := errors.New("token already consumed")

	f.users.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)
	f.resets.EXPECT().FindLatest(gomock.Any(), user.ID, "tok").Return(token, nil)
	f.resets.EXPECT().ConsumeWithPassword(gomock.Any(), token.ID, user.ID, gomock.Any()).Return(consumeErr)

	var loginEntry *domain.LoginAuditEntry
	f.audit.EXPECT().RecordLoginAttempt(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *domain.LoginAuditEntry) error {
			loginEntry = entry
			return nil
		})

	ok, err := f.svc.Reset(context.Background(), dto.ResetPasswordInput{
		Email:       user.Email,
		Token:       "tok",
		NewPassword: "whatever",
	})

	assert.Error(t, err)
	assert.Equal(t, consumeErr, err)
	assert.False(t, ok)
	require.NotNil(t, loginEntry)
	assert.False(t, loginEntry.Success)
}
