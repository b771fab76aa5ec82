package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mlindqvist/focal/internal/db"
	"github.com/mlindqvist/focal/internal/exchange"
	"github.com/mlindqvist/focal/internal/repository"
)

type exchangeService struct {
	tasks      repository.TaskRepo
	projects   repository.ProjectRepo
	categories repository.CategoryRepo
	journal    repository.JournalRepo
	deps       repository.DependencyRepo
	uow        db.UnitOfWork
	session    Session
	now        func() time.Time
}

func NewExchangeService(
	tasks repository.TaskRepo,
	projects repository.ProjectRepo,
	categories repository.CategoryRepo,
	journal repository.JournalRepo,
	deps repository.DependencyRepo,
	uow db.UnitOfWork,
	session Session,
) ExchangeService {
	return &exchangeService{
		tasks:      tasks,
		projects:   projects,
		categories: categories,
		journal:    journal,
		deps:       deps,
		uow:        uow,
		session:    session,
		now:        time.Now,
	}
}

// Export assembles the user's full data set into one document.
func (s *exchangeService) Export(ctx context.Context) (*exchange.Document, error) {
	if !s.session.Authenticated() {
		return nil, ErrNotAuthenticated
	}
	userID := s.session.UserID

	tasks, err := s.tasks.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	projects, err := s.projects.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	categories, err := s.categories.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	journal, err := s.journal.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing journal entries: %w", err)
	}
	edges, err := s.deps.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing dependencies: %w", err)
	}

	return exchange.BuildDocument(s.now(), tasks, projects, categories, journal, edges), nil
}

// Import validates the document, re-mints every id, and writes the converted
// objects in dependency order inside a single transaction.
func (s *exchangeService) Import(ctx context.Context, doc *exchange.Document) (*ExchangeResult, error) {
	if !s.session.Authenticated() {
		return nil, ErrNotAuthenticated
	}
	if errs := exchange.ValidateDocument(doc); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}
	bundle, err := exchange.Convert(doc, s.session.UserID)
	if err != nil {
		return nil, fmt.Errorf("converting document: %w", err)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		categories := repository.NewSQLiteCategoryRepo(tx)
		projects := repository.NewSQLiteProjectRepo(tx)
		tasks := repository.NewSQLiteTaskRepo(tx)
		deps := repository.NewSQLiteDependencyRepo(tx)
		journal := repository.NewSQLiteJournalRepo(tx)

		for _, c := range bundle.Categories {
			if err := categories.Create(ctx, c); err != nil {
				return fmt.Errorf("creating category %q: %w", c.Name, err)
			}
		}
		for _, p := range bundle.Projects {
			if err := projects.Create(ctx, p); err != nil {
				return fmt.Errorf("creating project %q: %w", p.Name, err)
			}
		}
		for _, t := range bundle.Tasks {
			if err := tasks.Create(ctx, t); err != nil {
				return fmt.Errorf("creating task %q: %w", t.Title, err)
			}
		}
		for _, e := range bundle.Edges {
			if err := deps.Create(ctx, e); err != nil {
				return fmt.Errorf("creating dependency: %w", err)
			}
		}
		for _, e := range bundle.Journal {
			if err := journal.Create(ctx, e); err != nil {
				return fmt.Errorf("creating journal entry: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ExchangeResult{
		TaskCount:       len(bundle.Tasks),
		ProjectCount:    len(bundle.Projects),
		CategoryCount:   len(bundle.Categories),
		JournalCount:    len(bundle.Journal),
		DependencyCount: len(bundle.Edges),
	}, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
