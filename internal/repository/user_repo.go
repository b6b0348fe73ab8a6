package repository

import (
	cm "content-management/internal/models"
	"database/sql"
	"errors"
	"fmt"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	insertUserSQL           = `INSERT INTO users (username, password_hash, role) VALUES (?, ?, ?)`
	selectUserByUsernameSQL = `SELECT id, username, password_hash, role FROM users WHERE username = ?`
	updateUserRoleSQL       = `UPDATE users SET role = ? WHERE username = ?`
)

// Create inserts a new user and returns its ID.
func (r *UserRepository) Create(username, passwordHash, role string) (int, error) {
	res, err := r.db.Exec(insertUserSQL, username, passwordHash, role)
	if err != nil {
		return 0, fmt.Errorf("insert user %q: %w", username, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for user %q: %w", username, err)
	}
	return int(lastID), nil
}

// GetByUsername fetches a user by username. Returns (nil, nil) if not found.
func (r *UserRepository) GetByUsername(username string) (*cm.User, error) {
	var u cm.User
	err := r.db.QueryRow(selectUserByUsernameSQL, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", username, err)
	}
	return &u, nil
}

// UpdateRole sets the role for the named user and returns the number of
// affected rows (0 when no such user exists).
func (r *UserRepository) UpdateRole(username, role string) (int64, error) {
	res, err := r.db.Exec(updateUserRoleSQL, role, username)
	if err != nil {
		return 0, fmt.Errorf("update role for user %q: %w", username, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("get rows affected for user %q: %w", username, err)
	}
	return n, nil
}
