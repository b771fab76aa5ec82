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

type projectService struct {
	projects repository.ProjectRepo
	session  Session
	now      func() time.Time
}

func NewProjectService(projects repository.ProjectRepo, session Session) ProjectService {
	return &projectService{projects: projects, session: session, now: time.Now}
}

func (s *projectService) Add(ctx context.Context, p *domain.Project) error {
	if !s.session.Authenticated() {
		return ErrNotAuthenticated
	}
	if p.Name == "" {
		return fmt.Errorf("project name is required")
	}
	if err := p.ValidateColor(); err != nil {
		return err
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.UserID = s.session.UserID
	now := s.now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.projects.Create(ctx, p)
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	if !s.session.Authenticated() {
		return nil, ErrNotAuthenticated
	}
	p, err := s.projects.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if p.UserID != s.session.UserID {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *projectService) List(ctx context.Context) ([]*domain.Project, error) {
	if !s.session.Authenticated() {
		return nil, ErrNotAuthenticated
	}
	return s.projects.ListByUser(ctx, s.session.UserID)
}

func (s *projectService) Update(ctx context.Context, p *domain.Project) error {
	if !s.session.Authenticated() {
		return ErrNotAuthenticated
	}
	if err := p.ValidateColor(); err != nil {
		return err
	}
	if _, err := s.GetByID(ctx, p.ID); err != nil {
		return err
	}
	p.UserID = s.session.UserID
	p.UpdatedAt = s.now().UTC()
	return s.projects.Update(ctx, p)
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	if !s.session.Authenticated() {
		return ErrNotAuthenticated
	}
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.projects.Delete(ctx, id)
}
