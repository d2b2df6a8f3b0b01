package dto

type TwoFactorVerifyInput struct {
	UserID    string `json:"user_id"`
	Code      string `json:"code"`
	IPAddress string `json:"-"`
	UserAgent string `json:"-"`
}

type TrustedDeviceInput struct {
	UserID           string `json:"user_id"`
	DeviceIdentifier string `json:"device_identifier"`
	DeviceName       string `json:"device_name,omitempty"`
	IPAddress        string `json:"-"`
	UserAgent        string `json:"-"`
}
