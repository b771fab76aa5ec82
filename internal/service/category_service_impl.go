package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mlindqvist/focal/internal/domain"
	"github.com/mlindqvist/focal/internal/repository"
)

type categoryService struct {
	categories repository.CategoryRepo
	session    Session
	now        func() time.Time
}

func NewCategoryService(categories repository.CategoryRepo, session Session) CategoryService {
	return &categoryService{categories: categories, session: session, now: time.Now}
}

func (s *categoryService) Add(ctx context.Context, c *domain.Category) error {
	if !s.session.Authenticated() {
		return ErrNotAuthenticated
	}
	if c.Name == "" {
		return fmt.Errorf("category name is required")
	}
	if err := c.ValidateColor(); err != nil {
		return err
	}
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	c.UserID = s.session.UserID
	now := s.now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	return s.categories.Create(ctx, c)
}

func (s *categoryService) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	if !s.session.Authenticated() {
		return nil, ErrNotAuthenticated
	}
	c, err := s.categories.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if c.UserID != s.session.UserID {
		return nil, ErrNotFound
	}
	return c, nil
}

func (s *categoryService) List(ctx context.Context) ([]*domain.Category, error) {
	if !s.session.Authenticated() {
		return nil, ErrNotAuthenticated
	}
	return s.categories.ListByUser(ctx, s.session.UserID)
}

func (s *categoryService) Update(ctx context.Context, c *domain.Category) error {
	if !s.session.Authenticated() {
		return ErrNotAuthenticated
	}
	if err := c.ValidateColor(); err != nil {
		return err
	}
	if _, err := s.GetByID(ctx, c.ID); err != nil {
		return err
	}
	c.UserID = s.session.UserID
	c.UpdatedAt = s.now().UTC()
	return s.categories.Update(ctx, c)
}

func (s *categoryService) Delete(ctx context.Context, id string) error {
	if !s.session.Authenticated() {
		return ErrNotAuthenticated
	}
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.categories.Delete(ctx, id)
}
