package repository

import (
	"content-management/internal/models"
	"context"
	"database/sql"
	"time"
)

type Users interface {
	Create(username, passwordHash, role string) (int, error)
	GetByUsername(username string) (*models.User, error)
	UpdateRole(username, role string) (int64, error)
}

type Contents interface {
	Insert(ctx context.Context, c models.Content) (int, error)
	GetByID(ctx context.Context, id int) (*models.Content, error)
	Update(ctx context.Context, c models.Content) (int64, error)
	Delete(ctx context.Context, id int) (int64, error)
}

type AuditTrail interface {
	Append(ctx context.Context, e models.AuditEvent) error
	List(ctx context.Context, from, to time.Time, method string) ([]models.AuditEvent, error)
}

type Repository struct {
	Users    Users
	Contents Contents
	Audit    AuditTrail
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:    NewUserRepository(db),
		Contents: NewContentSQLite(db),
		Audit:    NewAuditSQLite(db),
	}
}
