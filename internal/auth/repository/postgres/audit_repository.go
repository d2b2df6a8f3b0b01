package postgres

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/DusanVelimirovic/corelayer-identity/internal/auth/domain"
	"github.com/google/uuid"
)

// AuditRepository writes the append-only login and email audit logs. It
// deliberately exposes no update or delete operations; the database
// additionally guards both tables with triggers that reject mutations.
type AuditRepository struct {
	db PgxIface
}

func NewAuditRepository(db PgxIface) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) RecordLoginAttempt(ctx context.Context, entry *domain.LoginAuditEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	if entry.LoginTime.IsZero() {
		entry.LoginTime = time.Now().UTC()
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO login_audit_logs
			(id, user_id, ip_address, user_agent, login_time, success,
			 is_2fa_success, failure_reason, device_name, is_trusted_device)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, entry.ID, entry.UserID, entry.IPAddress, entry.UserAgent, entry.LoginTime,
		entry.Success, entry.Is2FASuccess, entry.FailureReason, entry.DeviceName,
		entry.IsTrustedDevice)
	if err != nil {
		return fmt.Errorf("failed to record login attempt: %w", err)
	}

	return nil
}

func (r *AuditRepository) CountRecentFailures(ctx context.Context, userID string, since time.Time) (int, error) {
	var count int

	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM login_audit_logs
		WHERE user_id = $1 AND success = FALSE AND login_time > $2
	`, userID, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count recent failures: %w", err)
	}

	return count, nil
}

func (r *AuditRepository) ListLoginAttempts(ctx context.Context, filter domain.LoginAuditFilter) ([]domain.LoginAuditEntry, error) {
	query := strings.Builder{}
	query.WriteString(`
		SELECT l.id, l.user_id, l.ip_address, l.user_agent, l.login_time,
		       l.success, l.is_2fa_success, l.failure_reason, l.device_name,
		       l.is_trusted_device
		FROM login_audit_logs l`)

	var (
		conds []string
		args  []any
	)

	if filter.UserIDOrEmail != "" {
		args = append(args, filter.UserIDOrEmail)
		n := strconv.Itoa(len(args))
		conds = append(conds, `(l.user_id = $`+n+
			` OR l.user_id IN (SELECT id::text FROM users WHERE email ILIKE '%' || $`+n+` || '%'))`)
	}

	if filter.Success != nil {
		args = append(args, *filter.Success)
		conds = append(conds, `l.success = $`+strconv.Itoa(len(args)))
	}

	if filter.From != nil {
		args = append(args, *filter.From)
		conds = append(conds, `l.login_time >= $`+strconv.Itoa(len(args)))
	}

	if filter.To != nil {
		args = append(args, *filter.To)
		conds = append(conds, `l.login_time <= $`+strconv.Itoa(len(args)))
	}

	if len(conds) > 0 {
		query.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}

	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	args = append(args, pageSize)
	query.WriteString(" ORDER BY l.login_time DESC LIMIT $" + strconv.Itoa(len(args)))
	args = append(args, (page-1)*pageSize)
	query.WriteString(" OFFSET $" + strconv.Itoa(len(args)))

	rows, err := r.db.Query(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list login attempts: %w", err)
	}
	defer rows.Close()

	var entries []domain.LoginAuditEntry

	for rows.Next() {
		var e domain.LoginAuditEntry

		err := rows.Scan(&e.ID, &e.UserID, &e.IPAddress, &e.UserAgent, &e.LoginTime,
			&e.Success, &e.Is2FASuccess, &e.FailureReason, &e.DeviceName,
			&e.IsTrustedDevice)
		if err != nil {
			return nil, fmt.Errorf("failed to scan login attempt: %w", err)
		}

		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func (r *AuditRepository) RecordEmailAttempt(ctx context.Context, entry *domain.EmailAuditEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	if entry.SentAt.IsZero() {
		entry.SentAt = time.Now().UTC()
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO email_audit_logs
			(id, to_email, template_type, sent_at, success, error_message, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, entry.ID, entry.ToEmail, entry.TemplateType, entry.SentAt, entry.Success,
		entry.ErrorMessage, entry.UserID)
	if err != nil {
		return fmt.Errorf("failed to record email attempt: %w", err)
	}

	return nil
}
