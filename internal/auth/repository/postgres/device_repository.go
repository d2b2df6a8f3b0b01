package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/DusanVelimirovic/corelayer-identity/internal/auth/domain"
)

type TrustedDeviceRepository struct {
	db PgxIface
}

func NewTrustedDeviceRepository(db PgxIface) *TrustedDeviceRepository {
	return &TrustedDeviceRepository{db: db}
}

func (r *TrustedDeviceRepository) Exists(ctx context.Context, userID, deviceIdentifier string) (bool, error) {
	var exists bool

	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM trusted_devices
			WHERE user_id = $1 AND device_identifier = $2
		)
	`, userID, deviceIdentifier).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check trusted device: %w", err)
	}

	return exists, nil
}

// ExistsValid reports whether an unexpired trust record covers the device.
func (r *TrustedDeviceRepository) ExistsValid(ctx context.Context, userID, deviceIdentifier string, now time.Time) (bool, error) {
	var exists bool

	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM trusted_devices
			WHERE user_id = $1 AND device_identifier = $2 AND expires_on > $3
		)
	`, userID, deviceIdentifier, now).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check trusted device: %w", err)
	}

	return exists, nil
}

func (r *TrustedDeviceRepository) Create(ctx context.Context, device *domain.TrustedDevice) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO trusted_devices
			(id, user_id, device_identifier, device_name, trusted_on, expires_on)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, device.ID, device.UserID, device.DeviceIdentifier, device.DeviceName,
		device.TrustedOn, device.ExpiresOn)
	if err != nil {
		return fmt.Errorf("failed to create trusted device: %w", err)
	}

	return nil
}
