package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"content-management/internal/models"
	"content-management/internal/repository"
)

// Domain errors mapped centrally by the handlers' error-mapping stage.
var (
	ErrContentNotFound = errors.New("content not found")
	ErrInvalidInput    = errors.New("invalid input")
)

type ContentService struct {
	contents repository.Contents
}

func NewContentService(contents repository.Contents) *ContentService {
	return &ContentService{contents: contents}
}

// Create validates the record, stamps CreatedAt and inserts it.
func (s *ContentService) Create(ctx context.Context, input models.Content) (models.Content, error) {
	if err := validateContent(input.Title, input.Category); err != nil {
		return models.Content{}, err
	}

	input.CreatedAt = time.Now().UTC()
	id, err := s.contents.Insert(ctx, input)
	if err != nil {
		return models.Content{}, err
	}
	input.ID = id
	return input, nil
}

// GetByID returns the record or ErrContentNotFound.
func (s *ContentService) GetByID(ctx context.Context, id int) (models.Content, error) {
	c, err := s.contents.GetByID(ctx, id)
	if err != nil {
		return models.Content{}, err
	}
	if c == nil {
		return models.Content{}, ErrContentNotFound
	}
	return *c, nil
}

// Update overwrites title, description and CreatedAt of an existing record.
// Category is deliberately left unchanged.
func (s *ContentService) Update(ctx context.Context, id int, input models.Content) (models.Content, error) {
	existing, err := s.contents.GetByID(ctx, id)
	if err != nil {
		return models.Content{}, err
	}
	if existing == nil {
		return models.Content{}, ErrContentNotFound
	}

	if err := validateTitle(input.Title); err != nil {
		return models.Content{}, err
	}

	existing.Title = input.Title
	existing.Description = input.Description
	existing.CreatedAt = time.Now().UTC()

	n, err := s.contents.Update(ctx, *existing)
	if err != nil {
		return models.Content{}, err
	}
	if n == 0 {
		return models.Content{}, ErrContentNotFound
	}
	return *existing, nil
}

// Delete removes the record or fails with ErrContentNotFound.
func (s *ContentService) Delete(ctx context.Context, id int) error {
	n, err := s.contents.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrContentNotFound
	}
	return nil
}

func validateTitle(title string) error {
	if title == "" {
		return fmt.Errorf("%w: title cannot be empty", ErrInvalidInput)
	}
	if len(title) > models.MaxTitleLen {
		return fmt.Errorf("%w: title exceeds %d chars", ErrInvalidInput, models.MaxTitleLen)
	}
	return nil
}

func validateContent(title, category string) error {
	if err := validateTitle(title); err != nil {
		return err
	}
	if category == "" {
		return fmt.Errorf("%w: category cannot be empty", ErrInvalidInput)
	}
	if len(category) > models.MaxCategoryLen {
		return fmt.Errorf("%w: category exceeds %d chars", ErrInvalidInput, models.MaxCategoryLen)
	}
	return nil
}
