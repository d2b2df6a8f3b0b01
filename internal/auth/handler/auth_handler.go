package handler

import (
	"strings"

	"github.com/DusanVelimirovic/corelayer-identity/internal/auth/domain"
	"github.com/DusanVelimirovic/corelayer-identity/internal/auth/dto"
	"github.com/DusanVelimirovic/corelayer-identity/internal/auth/service"
	autherror "github.com/DusanVelimirovic/corelayer-identity/internal/errors"
	"github.com/gofiber/fiber/v2"
)

// MsgResetRequested is returned for every reset request, found or not, so
// the endpoint cannot be used to probe which emails exist.
const MsgResetRequested = "If the account exists, a password reset email has been sent."

type AuthHandler struct {
	authService  *service.AuthService
	resetService *service.PasswordResetService
	cleanup      *service.TwoFactorCleanupService
	sessions     domain.SessionManager
}

func NewAuthHandler(
	authService *service.AuthService,
	resetService *service.PasswordResetService,
	cleanup *service.TwoFactorCleanupService,
	sessions domain.SessionManager,
) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		resetService: resetService,
		cleanup:      cleanup,
		sessions:     sessions,
	}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	h.captureRequestMeta(c, &input.IPAddress, &input.UserAgent)
	input.DeviceIdentifier = c.Get("X-Device-Identifier")
	input.DeviceName = c.Get("X-Device-Name")

	resp, err := h.authService.Login(c.Context(), input)
	if err != nil {
		return h.serverError(c, err)
	}

	if resp.Success || resp.RequiresTwoFactor {
		return c.Status(fiber.StatusOK).JSON(resp)
	}

	return c.Status(fiber.StatusUnauthorized).JSON(resp)
}

func (h *AuthHandler) VerifyTwoFactor(c *fiber.Ctx) error {
	var input dto.TwoFactorVerifyInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	h.captureRequestMeta(c, &input.IPAddress, &input.UserAgent)

	verified, err := h.authService.VerifyTwoFactor(c.Context(), input)
	if err != nil {
		return h.serverError(c, err)
	}

	if !verified {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"verified": false})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"verified": true})
}

func (h *AuthHandler) LoginAfterTwoFactor(c *fiber.Ctx) error {
	var input dto.TwoFactorVerifyInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	h.captureRequestMeta(c, &input.IPAddress, &input.UserAgent)

	resp, err := h.authService.LoginAfterTwoFactor(c.Context(), input)
	if err != nil {
		return h.serverError(c, err)
	}

	if !resp.Success {
		return c.Status(fiber.StatusUnauthorized).JSON(resp)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *AuthHandler) TrustDevice(c *fiber.Ctx) error {
	var input dto.TrustedDeviceInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if input.UserID == "" || input.DeviceIdentifier == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "user_id and device_identifier are required"})
	}

	h.captureRequestMeta(c, &input.IPAddress, &input.UserAgent)

	trusted, err := h.authService.TrustDevice(c.Context(), input)
	if err != nil {
		return h.serverError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"trusted": trusted})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token := bearerToken(c)
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing session token"})
	}

	if err := h.authService.Logout(c.Context(), token); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AuthHandler) RequestPasswordReset(c *fiber.Ctx) error {
	var input dto.PasswordResetRequestInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	h.captureRequestMeta(c, &input.IPAddress, &input.UserAgent)

	if _, err := h.resetService.Request(c.Context(), input); err != nil {
		return h.serverError(c, err)
	}

	// Same response whether or not a user was found.
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": MsgResetRequested})
}

func (h *AuthHandler) ValidateResetToken(c *fiber.Ctx) error {
	var input dto.ValidateResetTokenInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	valid, err := h.resetService.Validate(c.Context(), input.UserID, input.Token)
	if err != nil {
		return h.serverError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"valid": valid})
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var input dto.ResetPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	h.captureRequestMeta(c, &input.IPAddress, &input.UserAgent)

	ok, err := h.resetService.Reset(c.Context(), input)
	if err != nil {
		return h.serverError(c, err)
	}

	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid or expired password reset token."})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Password has been reset."})
}

func (h *AuthHandler) CleanupTwoFactorTokens(c *fiber.Ctx) error {
	removed, err := h.cleanup.CleanupExpired(c.Context())
	if err != nil {
		return h.serverError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"removed": removed})
}

func (h *AuthHandler) GetLoginAuditLogs(c *fiber.Ctx) error {
	var query dto.LoginAuditQueryInput
	if err := c.BodyParser(&query); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	logs, err := h.authService.GetLoginAuditLogs(c.Context(), query)
	if err != nil {
		return h.serverError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(logs)
}

// RequireSession guards a route group with a live session token.
func (h *AuthHandler) RequireSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing session token"})
		}

		userID, err := h.sessions.Verify(c.Context(), token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or revoked session"})
		}

		c.Locals("userID", userID)

		return c.Next()
	}
}

func (h *AuthHandler) captureRequestMeta(c *fiber.Ctx, ip, userAgent *string) {
	*ip = c.IP()
	*userAgent = string(c.Request().Header.UserAgent())
}

func (h *AuthHandler) serverError(c *fiber.Ctx, err error) error {
	if autherror.IsIntegrityViolation(err) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "audit log integrity violation"})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
}

func bearerToken(c *fiber.Ctx) string {
	auth := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}

	return ""
}
