package service

import (
	"context"
	"time"

	"content-management/internal/models"
	"content-management/internal/repository"
)

// Authorization handles registration, login, token verification and role management.
type Authorization interface {
	Register(username, password string) (int, error)
	Login(username, password string) (string, error)
	ParseToken(accessToken string) (*Claims, error)
	AssignRole(actor, target, role string) error
}

// Contents exposes the CRUD operations on content records.
type Contents interface {
	Create(ctx context.Context, input models.Content) (models.Content, error)
	GetByID(ctx context.Context, id int) (models.Content, error)
	Update(ctx context.Context, id int, input models.Content) (models.Content, error)
	Delete(ctx context.Context, id int) error
}

// AuditLog records completed state-mutating actions and exposes filtered access.
type AuditLog interface {
	Record(ctx context.Context, method, action, actor string) error
	List(ctx context.Context, f AuditFilter) ([]models.AuditEvent, error)
}

// JWTConfig carries the token issuance/validation settings supplied at startup.
type JWTConfig struct {
	Issuer     string
	Audience   string
	SigningKey string
	TTL        time.Duration
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Authorization
	Contents
	AuditLog
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, jwtCfg JWTConfig) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, jwtCfg),
		Contents:      NewContentService(repos.Contents),
		AuditLog:      NewAuditService(repos.Audit),
	}
}
