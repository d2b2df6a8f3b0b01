package dto

import "time"

type LoginInput struct {
	UserNameOrEmail  string `json:"username_or_email"`
	Password         string `json:"password"`
	DeviceIdentifier string `json:"-"`
	DeviceName       string `json:"-"`
	IPAddress        string `json:"-"`
	UserAgent        string `json:"-"`
}

type LoginResponse struct {
	Success             bool       `json:"success"`
	Message             string     `json:"message,omitempty"`
	RequiresTwoFactor   bool       `json:"requires_two_factor"`
	UserID              string     `json:"user_id,omitempty"`
	RoleIDs             []string   `json:"role_ids,omitempty"`
	RoleNames           []string   `json:"role_names,omitempty"`
	ModuleIDsWithAccess []int      `json:"module_ids_with_access,omitempty"`
	RemainingAttempts   *int       `json:"remaining_attempts,omitempty"`
	SessionToken        string     `json:"session_token,omitempty"`
	SessionExpiresAt    *time.Time `json:"session_expires_at,omitempty"`
}
