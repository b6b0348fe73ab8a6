package repository

import (
	"content-management/internal/models"
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type ContentSQLite struct {
	db *sql.DB
}

func NewContentSQLite(db *sql.DB) *ContentSQLite { return &ContentSQLite{db: db} }

var _ Contents = (*ContentSQLite)(nil)

// SQLite TIMESTAMP format
const sqliteTimeLayout = "2006-01-02 15:04:05"

const (
	insertContentSQL     = `INSERT INTO contents (title, description, category, created_at) VALUES (?, ?, ?, ?)`
	selectContentByIDSQL = `SELECT id, title, description, category, created_at FROM contents WHERE id = ?`
	updateContentSQL     = `UPDATE contents SET title = ?, description = ?, created_at = ? WHERE id = ?`
	deleteContentSQL     = `DELETE FROM contents WHERE id = ?`
)

// Insert stores a new content record and returns its ID.
func (r *ContentSQLite) Insert(ctx context.Context, c models.Content) (int, error) {
	res, err := r.db.ExecContext(ctx, insertContentSQL,
		c.Title,
		c.Description,
		c.Category,
		c.CreatedAt.UTC().Format(sqliteTimeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("insert content %q: %w", c.Title, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for content %q: %w", c.Title, err)
	}
	return int(lastID), nil
}

// GetByID fetches a content record. Returns (nil, nil) if not found.
func (r *ContentSQLite) GetByID(ctx context.Context, id int) (*models.Content, error) {
	var (
		c    models.Content
		desc sql.NullString
	)
	err := r.db.QueryRowContext(ctx, selectContentByIDSQL, id).
		Scan(&c.ID, &c.Title, &desc, &c.Category, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select content %d: %w", id, err)
	}
	c.Description = desc.String
	c.CreatedAt = c.CreatedAt.UTC()
	return &c, nil
}

// Update overwrites title, description and created_at for the record.
// Category is intentionally not part of the statement (not updatable).
// Returns the number of affected rows (0 when the id does not exist).
func (r *ContentSQLite) Update(ctx context.Context, c models.Content) (int64, error) {
	res, err := r.db.ExecContext(ctx, updateContentSQL,
		c.Title,
		c.Description,
		c.CreatedAt.UTC().Format(sqliteTimeLayout),
		c.ID,
	)
	if err != nil {
		return 0, fmt.Errorf("update content %d: %w", c.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("get rows affected for content %d: %w", c.ID, err)
	}
	return n, nil
}

// Delete removes the record and returns the number of affected rows.
func (r *ContentSQLite) Delete(ctx context.Context, id int) (int64, error) {
	res, err := r.db.ExecContext(ctx, deleteContentSQL, id)
	if err != nil {
		return 0, fmt.Errorf("delete content %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("get rows affected for content %d: %w", id, err)
	}
	return n, nil
}
