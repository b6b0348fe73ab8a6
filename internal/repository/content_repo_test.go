// content_repo_test.go
package repository

import (
	"content-management/internal/models"
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func testCtx(t *testing.T) context.Context {
	t.Helper()
	c, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	t.Cleanup(cancel)
	return c
}

func newMockContentRepo(t *testing.T) (*ContentSQLite, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	repo := NewContentSQLite(db)
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	}
	return repo, mock, cleanup
}

func TestContentSQLite_Insert(t *testing.T) {
	repo, mock, cleanup := newMockContentRepo(t)
	defer cleanup()

	createdAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta(insertContentSQL)).
		WithArgs("Go 1.24 released", "notes", "News", createdAt.Format(sqliteTimeLayout)).
		WillReturnResult(sqlmock.NewResult(5, 1))

	id, err := repo.Insert(testCtx(t), models.Content{
		Title:       "Go 1.24 released",
		Description: "notes",
		Category:    "News",
		CreatedAt:   createdAt,
	})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if id != 5 {
		t.Fatalf("expected id=5, got %d", id)
	}
}

func TestContentSQLite_Insert_DBError(t *testing.T) {
	repo, mock, cleanup := newMockContentRepo(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO contents").
		WillReturnError(errors.New("down"))

	_, err := repo.Insert(testCtx(t), models.Content{Title: "x", Category: "y", CreatedAt: time.Now()})
	if err == nil || !strings.Contains(err.Error(), "insert content") {
		t.Fatalf("expected wrapped insert error, got %v", err)
	}
}

func TestContentSQLite_GetByID(t *testing.T) {
	createdAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		id         int
		mockExpect func(sqlmock.Sqlmock)
		want       *models.Content
		wantErr    bool
	}{
		{
			name: "found",
			id:   3,
			mockExpect: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "title", "description", "category", "created_at"}).
					AddRow(3, "A", "B", "News", createdAt)
				m.ExpectQuery(regexp.QuoteMeta(selectContentByIDSQL)).
					WithArgs(3).
					WillReturnRows(rows)
			},
			want: &models.Content{ID: 3, Title: "A", Description: "B", Category: "News", CreatedAt: createdAt},
		},
		{
			name: "null description",
			id:   4,
			mockExpect: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "title", "description", "category", "created_at"}).
					AddRow(4, "A", nil, "News", createdAt)
				m.ExpectQuery(regexp.QuoteMeta(selectContentByIDSQL)).
					WithArgs(4).
					WillReturnRows(rows)
			},
			want: &models.Content{ID: 4, Title: "A", Category: "News", CreatedAt: createdAt},
		},
		{
			name: "not found (ErrNoRows)",
			id:   99,
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectContentByIDSQL)).
					WithArgs(99).
					WillReturnError(sql.ErrNoRows)
			},
			want: nil,
		},
		{
			name: "query error",
			id:   1,
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectContentByIDSQL)).
					WithArgs(1).
					WillReturnError(errors.New("db query failed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt // capture
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := newMockContentRepo(t)
			defer cleanup()

			tt.mockExpect(mock)

			c, err := repo.GetByID(testCtx(t), tt.id)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.want == nil {
				if c != nil {
					t.Fatalf("expected nil content, got %+v", c)
				}
				return
			}
			if c == nil {
				t.Fatalf("expected content, got nil")
			}
			if c.ID != tt.want.ID || c.Title != tt.want.Title || c.Description != tt.want.Description ||
				c.Category != tt.want.Category || !c.CreatedAt.Equal(tt.want.CreatedAt) {
				t.Fatalf("unexpected content: want %+v, got %+v", tt.want, c)
			}
		})
	}
}

func TestContentSQLite_Update(t *testing.T) {
	repo, mock, cleanup := newMockContentRepo(t)
	defer cleanup()

	createdAt := time.Date(2026, 8, 2, 9, 30, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta(updateContentSQL)).
		WithArgs("New title", "new desc", createdAt.Format(sqliteTimeLayout), 7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	n, err := repo.Update(testCtx(t), models.Content{
		ID:          7,
		Title:       "New title",
		Description: "new desc",
		Category:    "ignored by statement",
		CreatedAt:   createdAt,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 row affected, got %d", n)
	}
}

func TestContentSQLite_Delete(t *testing.T) {
	tests := []struct {
		name       string
		id         int
		mockExpect func(sqlmock.Sqlmock)
		wantN      int64
		wantErr    bool
	}{
		{
			name: "deleted",
			id:   7,
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(deleteContentSQL)).
					WithArgs(7).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			wantN: 1,
		},
		{
			name: "already gone",
			id:   7,
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(deleteContentSQL)).
					WithArgs(7).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantN: 0,
		},
		{
			name: "exec error",
			id:   8,
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(deleteContentSQL)).
					WithArgs(8).
					WillReturnError(errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt // capture
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := newMockContentRepo(t)
			defer cleanup()

			tt.mockExpect(mock)

			n, err := repo.Delete(testCtx(t), tt.id)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if n != tt.wantN {
				t.Fatalf("expected %d rows affected, got %d", tt.wantN, n)
			}
		})
	}
}
