package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DusanVelimirovic/corelayer-identity/internal/auth/domain"
	"github.com/jackc/pgx/v5"
)

type TwoFactorTokenRepository struct {
	db PgxIface
}

func NewTwoFactorTokenRepository(db PgxIface) *TwoFactorTokenRepository {
	return &TwoFactorTokenRepository{db: db}
}

func (r *TwoFactorTokenRepository) Store(ctx context.Context, token *domain.TwoFactorToken) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO two_factor_tokens (id, user_id, code, expiry)
		VALUES ($1, $2, $3, $4)
	`, token.ID, token.UserID, token.Code, token.Expiry)
	if err != nil {
		return fmt.Errorf("failed to store 2FA token: %w", err)
	}

	return nil
}

// FindValid returns any unexpired token matching (userID, code). Several
// tokens may be live for one user at once; the first match wins.
func (r *TwoFactorTokenRepository) FindValid(ctx context.Context, userID, code string, now time.Time) (*domain.TwoFactorToken, error) {
	var token domain.TwoFactorToken

	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, code, expiry
		FROM two_factor_tokens
		WHERE user_id = $1 AND code = $2 AND expiry > $3
		LIMIT 1
	`, userID, code, now).Scan(&token.ID, &token.UserID, &token.Code, &token.Expiry)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to find 2FA token: %w", err)
	}

	return &token, nil
}

func (r *TwoFactorTokenRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM two_factor_tokens WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete 2FA token: %w", err)
	}

	return nil
}

func (r *TwoFactorTokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM two_factor_tokens WHERE expiry < $1`, now)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired 2FA tokens: %w", err)
	}

	return int(tag.RowsAffected()), nil
}
