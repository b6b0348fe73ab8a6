package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"content-management/internal/models"
	"content-management/internal/repository"
)

// AuditFilter supports history filtering by time range and HTTP method.
type AuditFilter struct {
	From   time.Time // inclusive; zero means no lower bound
	To     time.Time // inclusive; zero means no upper bound
	Method string    // "", "POST", "DELETE"
}

type AuditService struct {
	audit repository.AuditTrail
}

func NewAuditService(audit repository.AuditTrail) *AuditService {
	return &AuditService{audit: audit}
}

var errInvalidTimeRange = errors.New("invalid time range: From must be <= To")

// Record appends one audit entry for a completed state-mutating action.
func (s *AuditService) Record(ctx context.Context, method, action, actor string) error {
	return s.audit.Append(ctx, models.AuditEvent{
		Method: method,
		Action: action,
		Actor:  actor,
	})
}

// normalizeToUTC returns t in UTC, preserving zero time values.
func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

// normalizeAndValidateFilter prepares query parameters and validates the time range.
func normalizeAndValidateFilter(f AuditFilter) (time.Time, time.Time, string, error) {
	from := normalizeToUTC(f.From)
	to := normalizeToUTC(f.To)

	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return time.Time{}, time.Time{}, "", errInvalidTimeRange
	}

	method := strings.TrimSpace(strings.ToUpper(f.Method))
	return from, to, method, nil
}

func (s *AuditService) List(ctx context.Context, f AuditFilter) ([]models.AuditEvent, error) {
	from, to, method, err := normalizeAndValidateFilter(f)
	if err != nil {
		return nil, err
	}
	return s.audit.List(ctx, from, to, method)
}
