package constant

// Failure reasons recorded in the login audit log.
const (
	ReasonUserNotFound    = "User not found"
	ReasonAccountInactive = "Account inactive"
	ReasonAccountLocked   = "Account locked"
	ReasonInvalidPassword = "Invalid password"
	ReasonTwoFactorNeeded = "2FA required"
	ReasonInvalid2FAToken = "Invalid or expired 2FA token"
	ReasonResetRequested  = "Password reset requested"
	ReasonResetCompleted  = "Password reset completed"
	ReasonResetRejected   = "Invalid or expired password reset token"
)

// Email audit template types.
const (
	TemplateTwoFactor     = "2FA"
	TemplatePasswordReset = "PasswordReset"
)

// UnknownUserID is recorded when a login attempt cannot be tied to a user.
const UnknownUserID = "unknown"

// TwoFactorCodeLength is the number of digits in an emailed 2FA code.
const TwoFactorCodeLength = 6
