package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DusanVelimirovic/corelayer-identity/internal/auth/domain"
	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	db PgxIface
}

func NewUserRepository(db PgxIface) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, username, email, email_confirmed, password_hash,
		is_active, two_factor_enabled, access_failed_count, lockout_end, created_at`

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 LIMIT 1`

	return r.scanUser(r.db.QueryRow(ctx, query, username))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1) LIMIT 1`

	return r.scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 LIMIT 1`

	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *UserRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User

	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.EmailConfirmed,
		&user.PasswordHash, &user.IsActive, &user.TwoFactorEnabled,
		&user.AccessFailedCount, &user.LockoutEnd, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// RecordPasswordFailure bumps the store-level failure counter and, once it
// reaches maxFailures, locks the account for lockoutFor and resets the
// counter. Returns whether the account is now locked.
func (r *UserRepository) RecordPasswordFailure(ctx context.Context, userID string, maxFailures int, lockoutFor time.Duration) (bool, error) {
	var count int

	err := r.db.QueryRow(ctx, `
		UPDATE users
		SET access_failed_count = access_failed_count + 1
		WHERE id = $1
		RETURNING access_failed_count
	`, userID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to record password failure: %w", err)
	}

	if count < maxFailures {
		return false, nil
	}

	_, err = r.db.Exec(ctx, `
		UPDATE users
		SET lockout_end = $2, access_failed_count = 0
		WHERE id = $1
	`, userID, time.Now().UTC().Add(lockoutFor))
	if err != nil {
		return false, fmt.Errorf("failed to set lockout: %w", err)
	}

	return true, nil
}

func (r *UserRepository) ClearPasswordFailures(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET access_failed_count = 0, lockout_end = NULL
		WHERE id = $1 AND (access_failed_count <> 0 OR lockout_end IS NOT NULL)
	`, userID)
	if err != nil {
		return fmt.Errorf("failed to clear password failures: %w", err)
	}

	return nil
}

func (r *UserRepository) GetRoles(ctx context.Context, userID string) ([]domain.Role, error) {
	rows, err := r.db.Query(ctx, `
		SELECT r.id, r.name
		FROM roles r
		JOIN user_roles ur ON ur.role_id = r.id
		WHERE ur.user_id = $1
		ORDER BY r.name
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get roles: %w", err)
	}
	defer rows.Close()

	var roles []domain.Role

	for rows.Next() {
		var role domain.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}

		roles = append(roles, role)
	}

	return roles, rows.Err()
}
