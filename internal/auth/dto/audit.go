package dto

import "time"

type LoginAuditQueryInput struct {
	UserIDOrEmail string     `json:"user_id_or_email,omitempty"`
	Success       *bool      `json:"success,omitempty"`
	From          *time.Time `json:"from,omitempty"`
	To            *time.Time `json:"to,omitempty"`
	Page          int        `json:"page"`
	PageSize      int        `json:"page_size"`
}

type LoginAuditEntryOutput struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	IPAddress       *string   `json:"ip_address,omitempty"`
	UserAgent       *string   `json:"user_agent,omitempty"`
	LoginTime       time.Time `json:"login_time"`
	Success         bool      `json:"success"`
	Is2FASuccess    *bool     `json:"is_2fa_success,omitempty"`
	FailureReason   *string   `json:"failure_reason,omitempty"`
	DeviceName      *string   `json:"device_name,omitempty"`
	IsTrustedDevice *bool     `json:"is_trusted_device,omitempty"`
}
