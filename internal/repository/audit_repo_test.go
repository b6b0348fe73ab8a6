// audit_repo_test.go
package repository

import (
	"content-management/internal/models"
	"database/sql"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestAuditAppend_Success_WithDefaults(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer func() { _ = db.Close() }()

	repo := NewAuditSQLite(db)

	// We don't know generated id or exact timestamp string, but we can match Exec and argument count.
	mock.ExpectExec(regexp.QuoteMeta(`
		INSERT INTO audit_events (id, occurred_at, method, action, actor)
		VALUES (?, ?, ?, ?, ?)
	`)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(),
			"DELETE", "content.delete",
			"root",
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Append(testCtx(t), models.AuditEvent{
		// EventID empty -> repo generates
		// OccurredAt zero -> repo sets UTC now
		Method: "  delete ",
		Action: "content.delete",
		Actor:  "root",
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestAuditAppend_DBError(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer func() { _ = db.Close() }()

	repo := NewAuditSQLite(db)

	mock.ExpectExec("INSERT INTO audit_events").
		WillReturnError(errors.New("down"))

	err = repo.Append(testCtx(t), models.AuditEvent{
		Method: "POST",
		Action: "content.create",
	})
	if err == nil || !strings.Contains(err.Error(), "down") {
		t.Fatalf("expected error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestAuditList_NoFilters(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer func() { _ = db.Close() }()

	repo := NewAuditSQLite(db)

	now := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "occurred_at", "method", "action", "actor"}).
		AddRow("e1", now, "POST", "content.create", "root").
		AddRow("e2", now.Add(time.Second), "DELETE", "content.delete", nil)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, occurred_at, method, action, actor FROM audit_events ORDER BY occurred_at ASC`)).
		WillReturnRows(rows)

	out, err := repo.List(testCtx(t), time.Time{}, time.Time{}, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 events, got %d", len(out))
	}
	if out[0].EventID != "e1" || out[0].Actor != "root" {
		t.Fatalf("unexpected first event: %+v", out[0])
	}
	if out[1].Actor != "" {
		t.Fatalf("expected empty actor for NULL column, got %q", out[1].Actor)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestAuditList_FiltersAndMethodNormalization(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer func() { _ = db.Close() }()

	repo := NewAuditSQLite(db)

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, occurred_at, method, action, actor FROM audit_events WHERE occurred_at >= ? AND occurred_at <= ? AND method = ? ORDER BY occurred_at ASC`)).
		WithArgs(from, to, "DELETE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "occurred_at", "method", "action", "actor"}))

	out, err := repo.List(testCtx(t), from, to, " delete ")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty result, got %d", len(out))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestAuditList_QueryError(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer func() { _ = db.Close() }()

	repo := NewAuditSQLite(db)

	mock.ExpectQuery("SELECT id, occurred_at, method, action, actor FROM audit_events").
		WillReturnError(sql.ErrConnDone)

	if _, err := repo.List(testCtx(t), time.Time{}, time.Time{}, ""); err == nil {
		t.Fatalf("expected query error, got nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}
