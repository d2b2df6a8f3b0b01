package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DusanVelimirovic/corelayer-identity/internal/auth/domain"
	"github.com/jackc/pgx/v5"
)

type PasswordResetRepository struct {
	db PgxIface
}

func NewPasswordResetRepository(db PgxIface) *PasswordResetRepository {
	return &PasswordResetRepository{db: db}
}

// InvalidateActive soft-invalidates every unused, unexpired token for the
// user. Rows are kept for the audit trail, never deleted.
func (r *PasswordResetRepository) InvalidateActive(ctx context.Context, userID string, now time.Time) error {
	_, err := r.db.Exec(ctx, `
		UPDATE password_reset_tokens
		SET is_used = TRUE
		WHERE user_id = $1 AND is_used = FALSE AND expiration_time > $2
	`, userID, now)
	if err != nil {
		return fmt.Errorf("failed to invalidate reset tokens: %w", err)
	}

	return nil
}

func (r *PasswordResetRepository) Store(ctx context.Context, token *domain.PasswordResetToken) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO password_reset_tokens
			(id, user_id, token, expiration_time, is_used, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, token.ID, token.UserID, token.Token, token.ExpirationTime, token.IsUsed,
		token.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	return nil
}

// FindLatest returns the newest token row matching (userID, token), used
// or not, so the caller can distinguish nothing-found from no-longer-valid.
func (r *PasswordResetRepository) FindLatest(ctx context.Context, userID, token string) (*domain.PasswordResetToken, error) {
	var t domain.PasswordResetToken

	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, token, expiration_time, is_used, created_at
		FROM password_reset_tokens
		WHERE user_id = $1 AND token = $2
		ORDER BY created_at DESC
		LIMIT 1
	`, userID, token).Scan(&t.ID, &t.UserID, &t.Token, &t.ExpirationTime,
		&t.IsUsed, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to find reset token: %w", err)
	}

	return &t, nil
}

// ConsumeWithPassword marks the token used and installs the new password
// hash in a single transaction. If either statement fails the other is
// rolled back, so a failed credential update leaves the token unused.
func (r *PasswordResetRepository) ConsumeWithPassword(ctx context.Context, tokenID, userID, newPasswordHash string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin reset transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE password_reset_tokens
		SET is_used = TRUE
		WHERE id = $1 AND is_used = FALSE
	`, tokenID)
	if err != nil {
		return fmt.Errorf("failed to consume reset token: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("reset token %s already consumed", tokenID)
	}

	_, err = tx.Exec(ctx, `
		UPDATE users
		SET password_hash = $2, access_failed_count = 0, lockout_end = NULL
		WHERE id = $1
	`, userID, newPasswordHash)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit reset transaction: %w", err)
	}

	return nil
}
