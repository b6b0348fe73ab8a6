package repository

import (
	"content-management/internal/models"
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
)

type AuditSQLite struct {
	db *sql.DB
}

func NewAuditSQLite(db *sql.DB) *AuditSQLite { return &AuditSQLite{db: db} }

var _ AuditTrail = (*AuditSQLite)(nil)

// Append inserts a new audit event. If EventID or OccurredAt are empty, they're set.
func (r *AuditSQLite) Append(ctx context.Context, e models.AuditEvent) error {
	if e.EventID == "" {
		e.EventID = uuid.NewString()
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	} else {
		e.OccurredAt = e.OccurredAt.UTC()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO audit_events (id, occurred_at, method, action, actor)
		VALUES (?, ?, ?, ?, ?)
	`,
		e.EventID,
		e.OccurredAt.Format(sqliteTimeLayout),
		strings.ToUpper(strings.TrimSpace(e.Method)),
		e.Action,
		e.Actor,
	)

	return err
}

// List returns audit events filtered by [from, to] (inclusive) and/or HTTP method, ordered ASC.
func (r *AuditSQLite) List(ctx context.Context, from, to time.Time, method string) ([]models.AuditEvent, error) {
	var (
		conds []string
		args  []any
	)

	if !from.IsZero() {
		conds = append(conds, "occurred_at >= ?")
		args = append(args, from.UTC())
	}
	if !to.IsZero() {
		conds = append(conds, "occurred_at <= ?")
		args = append(args, to.UTC())
	}
	if method = strings.ToUpper(strings.TrimSpace(method)); method != "" {
		conds = append(conds, "method = ?")
		args = append(args, method)
	}

	q := `SELECT id, occurred_at, method, action, actor FROM audit_events`
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY occurred_at ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.AuditEvent, 0, 64)
	for rows.Next() {
		var (
			ev    models.AuditEvent
			actor sql.NullString
		)
		if err := rows.Scan(&ev.EventID, &ev.OccurredAt, &ev.Method, &ev.Action, &actor); err != nil {
			return nil, err
		}
		ev.OccurredAt = ev.OccurredAt.UTC()
		ev.Actor = actor.String
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
