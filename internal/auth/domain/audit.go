package domain

import "time"

// LoginAuditEntry is a write-once record of an authentication-relevant
// event. Rows are never updated or deleted; the storage layer rejects any
// attempt with an integrity error.
type LoginAuditEntry struct {
	ID              string
	UserID          string
	IPAddress       *string
	UserAgent       *string
	LoginTime       time.Time
	Success         bool
	Is2FASuccess    *bool
	FailureReason   *string
	DeviceName      *string
	IsTrustedDevice *bool
}

// EmailAuditEntry records the outcome of one outbound email attempt.
type EmailAuditEntry struct {
	ID           string
	ToEmail      string
	TemplateType string
	SentAt       time.Time
	Success      bool
	ErrorMessage *string
	UserID       *string
}

// LoginAuditFilter narrows a login-audit query. Zero values mean "no
// filter"; Page is 1-based.
type LoginAuditFilter struct {
	UserIDOrEmail string
	Success       *bool
	From          *time.Time
	To            *time.Time
	Page          int
	PageSize      int
}
