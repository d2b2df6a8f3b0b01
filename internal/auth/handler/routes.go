package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	auth := app.Group("/api/v1/auth")
	auth.Post("/login", h.Login)
	auth.Post("/verify-2fa", h.VerifyTwoFactor)
	auth.Post("/login-after-2fa", h.LoginAfterTwoFactor)
	auth.Post("/trust-device", h.TrustDevice)
	auth.Post("/request-password-reset", h.RequestPasswordReset)
	auth.Post("/validate-reset-token", h.ValidateResetToken)
	auth.Post("/reset-password", h.ResetPassword)

	auth.Post("/logout", h.RequireSession(), h.Logout)
	auth.Post("/cleanup-expired-2fa", h.RequireSession(), h.CleanupTwoFactorTokens)

	admin := app.Group("/api/v1/admin", h.RequireSession())
	admin.Post("/audit/login-logs", h.GetLoginAuditLogs)
}
